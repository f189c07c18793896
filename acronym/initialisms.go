package acronym

// goInitialisms are the initialisms Go style keeps in a single case.
var goInitialisms = []string{
	"ACL", "API", "ASCII", "CPU", "CSS", "DNS", "EOF", "GUID", "HTML", "HTTP",
	"HTTPS", "ID", "IP", "JSON", "LHS", "QPS", "RAM", "RHS", "RPC", "SLA",
	"SMTP", "SQL", "SSH", "TCP", "TLS", "TTL", "UDP", "UI", "UID", "UUID",
	"URI", "URL", "UTF8", "VM", "XML", "XMPP", "XSRF", "XSS",
}

var goInitialismsTable = FromList(goInitialisms)

// GoInitialisms returns a Table of the common Go initialisms, each mapped to
// its all-caps form ("id" -> "ID", "url" -> "URL").
func GoInitialisms() Table {
	return goInitialismsTable
}
