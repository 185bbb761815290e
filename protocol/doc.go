/*
Package protocol defines the messages exchanged by the three parties of
the verifiable file index, and the codes describing their outcome.

The data owner outsources a set of filenames to the cloud as tokens, and
keeps only its PRF key and the root digest of the authentication tree.
A data user holding a token and the root asks the cloud whether the file
exists, and checks the proof it gets back. The owner adds and deletes
entries later on, checking each update before accepting the new root.

Cloud

Package cloud answers search, add and delete requests on the
outsourced dictionary.

Client

Package client implements the checks a data user performs on
the cloud's answers.

Owner

Package owner derives tokens from filenames, builds the dictionary
handed to the cloud, and checks the cloud's updates.

Error

This module defines the constants representing the types
of errors that the cloud may return to a client, and the results
of the checks performed by a client.
*/
package protocol
