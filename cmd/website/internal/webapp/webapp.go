package webapp

import "embed"

// FS holds the page templates, shared components and static assets under app/.
//
//go:embed app
var FS embed.FS
