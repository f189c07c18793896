// Package convert is the functional surface of casetools.
//
// Each To* function tokenizes its input into words and re-joins them in one
// naming convention. None of them can fail: every input, including the empty
// string, a string of separators, or non-ASCII text, maps to some output.
//
//	convert.ToSnake("XMLHttpRequest")       // "xml_http_request"
//	convert.ToCamel("FIELD_NAME11")         // "fieldName11"
//	convert.ToTrain("content_type")         // "Content-Type"
//	convert.ToScreamingSnake("abc123Def")   // "ABC123_DEF"
//
// Acronym tables are passed as options and only affect words the convention
// capitalizes:
//
//	convert.ToPascal("xml_http_request", convert.WithAcronyms(map[string]string{
//		"xml":  "XML",
//		"http": "HTTP",
//	})) // "XMLHTTPRequest"
//
//	convert.ToCamel("user_id", convert.WithGoInitialisms()) // "userID"
//
// ConvertAll converts many strings concurrently while keeping their order.
// All functions are safe for concurrent use.
package convert
