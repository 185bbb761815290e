/*
Package application is a library for building the executables of the
verifiable file index.

Config

This module defines the configuration layer shared by every executable:
the AppConfig abstraction, its TOML loader, and the loading of the PRF
key file referenced by a config.

Encoding

This module implements the message encoding and decoding for the
communications between the parties. Currently this module only
supports JSON encoding.

Logger

This module implements a generic logging system that can be used by any
application/executable.

Source

This module lists the filenames that a data owner outsources.

Transport

This module carries requests to an in-process cloud in their wire
encoding, so the parties only ever exchange what they would exchange
over a network.
*/
package application
