package common

// Media types accepted for candidate resumes. Files of any other type are
// rejected at the selection boundary and never reach the working set.
const (
	MediaTypePDF  = "application/pdf"
	MediaTypeDocx = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

// AuthorizationHeader is the HTTP header carrying the bearer credential on
// authenticated requests.
const AuthorizationHeader = "Authorization"
