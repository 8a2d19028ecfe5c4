// Package jsonc parses JSON documents that may contain // line comments.
//
// The grammar is assembled from the combinator package. Comments are
// accepted anywhere white space is, around values, commas and colons:
//
//	// service settings
//	{
//	    "port": 8080, // default
//	    "hosts": ["a", "b"]
//	}
//
// Strings are taken literally: there is no escape processing, so a
// backslash is an ordinary character and a quote always ends the string.
// Block comments and trailing commas are rejected. Objects keep their
// members in source order and keep duplicate keys.
package jsonc
