package cli

const usageTemplate = `
Catalogkeeper Client

Usage:
  catalogkeeper [OPTIONS] COMMAND

Options:
  --version       Show version information
  --server URL    Server URL (default: http://127.0.0.1:5000, env CATALOGKEEPER_SERVER)
  --db PATH       Path to local database (default: catalogkeeper-client.db)

Commands:
  signup                  Create a new account
  login                   Login to server
  logout                  Logout and clear the saved session
  status                  Show authentication status
  list [--query q] [--category c]
                          List your products, optionally filtered
  add                     Add a new product
  update <id>             Update an existing product
  delete <id>             Delete a product

Examples:
  catalogkeeper signup
  catalogkeeper login
  catalogkeeper list
  catalogkeeper list --query phone --category Electronics
  catalogkeeper add
  catalogkeeper update 42
  catalogkeeper delete 42
  catalogkeeper --server https://catalog.example.com login
`

const statusTemplate = `
=== Session Status ===

{{- if .Authenticated }}

Status: Authenticated
Name:   {{.Identity.Name}}
Email:  {{.Identity.Email}}
ID:     {{.Identity.ID}}
{{- else }}

Status: Not authenticated

Run 'catalogkeeper login' to authenticate.
{{- end }}
`

const productListTemplate = `
=== Products ===

{{- if eq (len .) 0 }}

No products found.

Use 'catalogkeeper add' to add your first product.
{{ else }}

Found {{len .}} product(s):

{{- range . }}
- {{ .Name }}
   ID:       {{ .ID }}
   Category: {{ .Category }}
   Price:    {{ printf "%.2f" .Price }}
   Image:    {{ .ImageURL }}
   {{ .Description }}

{{- end }}
{{- end }}
`
