/*
Package types contains small value types that are common across the engine
runtime helpers: a time.Duration with friendly JSON and text encodings, used
by configuration structs, and the Unit singleton type.
*/
package types
