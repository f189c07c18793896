// Package acronym provides acronym tables: mappings from a lower-case word to
// the exact spelling it should have in converted output.
//
// A Table is consulted only when a convention capitalizes a word, so
// "xml" -> "XML" turns "xml_http_request" into "XMLHttpRequest" in Pascal case
// while camel case still starts with "xml". Display forms are used verbatim;
// the lookup itself ignores case.
//
// Tables can be built from a Go map with New, taken from the common Go
// initialisms with GoInitialisms, combined with Merge, or loaded from a YAML,
// JSON or TOML document:
//
//	# acronyms.yaml
//	acronyms:
//	  http: Http
//	  oauth: OAuth
//	initialisms: [XML, ID, URL]
//
// A flat mapping ("xml: XML") is accepted as well.
package acronym
