// Package types defines the kind model shared by the binder packages: the
// Kind identity tokens, the Primitive type set, the Char kind, sentinel errors,
// and the CLI Config.
package types
