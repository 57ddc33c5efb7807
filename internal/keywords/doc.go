// Package keywords provides the keyword dictionaries that drive column
// matching: for every canonical field of an entity, the ordered list of raw
// header synonyms that may supply it.
//
// Dictionaries are immutable configuration passed explicitly to the matcher.
// The built-in defaults are returned by [Default]; alternative dictionaries
// can be loaded from YAML.
//
// # File format
//
// Sections and fields are ordered; order decides matching priority.
//
//	version: "1"
//	parent:
//	  Parent ID: [parent id, parentid, parent_id]
//	  Email: email
//	student:
//	  StudentID: [student id, studentid]
//	payment:
//	  Amount: [amount, price]
//
// A section left out of the file falls back to the built-in dictionary for
// that entity. A field that is not part of the entity's canonical schema is
// a fatal configuration error (see [ErrInvalidDictionary]).
package keywords
