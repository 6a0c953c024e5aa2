package email

// Template names an embedded email template.
type Template string

const (
	// TemplateReportDigest is templates/report_digest.html.
	TemplateReportDigest Template = "report_digest"
)

// File is the template's file name inside the embedded tree.
func (t Template) File() string {
	return string(t) + ".html"
}
