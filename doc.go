// Package casetools converts identifier-like strings between naming conventions.
//
// A string such as "XMLHttpRequest", "FIELD_NAME11" or "this-contains_ ALLKinds"
// is first split into a sequence of lowercase words by a Unicode-aware
// word-boundary tokenizer, then the words are re-joined in the requested
// convention. Words listed in an acronym table keep a caller-chosen spelling
// wherever the convention capitalizes them.
//
// # Packages
//
//   - convert: the functional surface (ToSnake, ToCamel, ToPascal, ...)
//   - tokenizer: splits a string into words
//   - formatter: joins words in a naming convention
//   - acronym: acronym tables, Go initialisms and table files (YAML, JSON, TOML)
//   - generator: Go constant generation from a list of wire names
//   - caseerrors: structured error types for file loading and configuration
//
// # Quick Start
//
//	import "github.com/erraggy/casetools/convert"
//
//	convert.ToSnake("XMLHttpRequest")                           // "xml_http_request"
//	convert.ToCamel("FIELD_NAME11")                             // "fieldName11"
//	convert.ToPascal("xml_http_request", convert.WithAcronyms(map[string]string{
//		"xml": "XML", "http": "HTTP",
//	}))                                                         // "XMLHTTPRequest"
//
// # Supported Conventions
//
//	snake            xml_http_request
//	screaming-snake  XML_HTTP_REQUEST
//	camel            xmlHttpRequest
//	pascal           XmlHttpRequest
//	kebab            xml-http-request
//	screaming-kebab  XML-HTTP-REQUEST
//	train            Xml-Http-Request
//	title            Xml Http Request
//	lower            xml http request
//	upper            XML HTTP REQUEST
//
// All conversion functions are pure and safe for concurrent use.
package casetools
