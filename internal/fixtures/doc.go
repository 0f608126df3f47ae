// See config.go for the Option/config shape and generate.go for the
// sequence generators built on top of it.
package fixtures
