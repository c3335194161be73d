// Package markdown turns the on-disk post corpus into structured documents.
// It parses the front matter block each post starts with, derives fallback
// metadata from the YYYY-MM-DD-slug.markdown naming convention, renders
// Markdown bodies to HTML through goldmark, and synchronises the results with
// the post store.
package markdown
