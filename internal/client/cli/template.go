package cli

const usageTemplate = `
TakeNotes Client

Usage:
  takenotes [OPTIONS] COMMAND

Options:
  --version          Show version information
  --server URL       Server URL (default: http://localhost:3001)
  --db PATH          Path to local database (default: takenotes-client.db)
  --log-level LEVEL  Log level: debug, info, warn, error (default: warn)

Environment (also read from .env):
  TAKENOTES_SERVER   Server URL, used when --server is not given
  TAKENOTES_DB       Database path, used when --db is not given

Commands:
  register           Create a new account
  login              Login and save the session
  logout             Delete the saved session
  status             Show authentication status
  list               List your notes
  get <id>           Show a note in full
  add [flags]        Create a note (--title, --content, --color)
  colors             Show the note background palette

Examples:
  takenotes register
  takenotes login
  takenotes add --title Groceries --content "Milk, eggs" --color "uranian blue"
  takenotes list
  takenotes --server https://notes.example.com login
`

const notesListTemplate = `
=== Your Notes ===

{{- if eq (len .) 0 }}
No notes yet.

Use 'takenotes add' to write your first note.

{{ else }}
Found {{len .}} note(s):

{{- range . }}
- {{ if .Title }}{{ .Title }}{{ else }}(untitled){{ end }}
   ID:      {{ .ID }}
   {{- if .Content }}
   Preview: {{ preview .Content }}
   {{- end }}
   {{- if .BgColor }}
   Color:   {{ colorName .BgColor }}
   {{- end }}
   Created: {{ .CreatedAt }}

{{- end }}
Use 'takenotes get <id>' to view a full note.
{{- end }}
`

const noteTemplate = `
=== Note Details ===

Title:   {{ .Title }}
ID:      {{ .ID }}
{{- if .BgColor }}
Color:   {{ colorName .BgColor }} ({{ .BgColor }})
{{- end }}
Created: {{ .CreatedAt }}
Updated: {{ .UpdatedAt }}

Content:
---
{{ .Content }}
---
`

const colorsTemplate = `
=== Note Colors ===
{{ range . }}
  {{ printf "%-14s" .Name }} {{ .Hex }}
{{- end }}

Any other #RRGGBB value is accepted as well.
`
