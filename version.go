package hotscript

// Version of the library, surfaced by the CLI banner.
const Version = "0.2.0"
