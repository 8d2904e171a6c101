// Package omdb provides a client for the OMDb movie API.
package omdb

// Document is an OMDb record as returned by the API.
// The schema is not owned by us, so it is kept as a generic JSON object.
type Document map[string]any

// Summary is one entry of a search result.
type Summary map[string]any

// searchResponse is the envelope for s= queries.
type searchResponse struct {
	Response string    `json:"Response"`
	Search   []Summary `json:"Search"`
	Error    string    `json:"Error,omitempty"`
}

// Found reports whether OMDb flagged the document as a hit.
func (d Document) Found() bool {
	resp, _ := d["Response"].(string)
	return resp != "False"
}

// Title returns the document title, if any.
func (d Document) Title() string {
	s, _ := d["Title"].(string)
	return s
}

// IMDBID returns the imdbID field of a summary.
func (s Summary) IMDBID() string {
	id, _ := s["imdbID"].(string)
	return id
}

// Title returns the summary title.
func (s Summary) Title() string {
	t, _ := s["Title"].(string)
	return t
}

// Year returns the summary year as OMDb reports it (e.g. "2010", "2011–2019").
func (s Summary) Year() string {
	y, _ := s["Year"].(string)
	return y
}
