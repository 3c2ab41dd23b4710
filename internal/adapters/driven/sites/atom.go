package sites

import "encoding/xml"

// XML namespaces and link relations used by the content feed.
const (
	nsAtom  = "http://www.w3.org/2005/Atom"
	nsSites = "http://schemas.google.com/sites/2008"
	nsXHTML = "http://www.w3.org/1999/xhtml"

	kindScheme = "http://schemas.google.com/g/2005#kind"
	kindPrefix = nsSites + "#"

	relParent    = nsSites + "#parent"
	relSelf      = "self"
	relAlternate = "alternate"

	atomMediaType = "application/atom+xml"
)

type atomFeed struct {
	XMLName xml.Name    `xml:"http://www.w3.org/2005/Atom feed"`
	Entries []atomEntry `xml:"http://www.w3.org/2005/Atom entry"`
}

type atomEntry struct {
	XMLName    xml.Name       `xml:"http://www.w3.org/2005/Atom entry"`
	ID         string         `xml:"http://www.w3.org/2005/Atom id,omitempty"`
	Categories []atomCategory `xml:"http://www.w3.org/2005/Atom category"`
	Title      string         `xml:"http://www.w3.org/2005/Atom title"`
	Content    *atomContent   `xml:"http://www.w3.org/2005/Atom content,omitempty"`
	Links      []atomLink     `xml:"http://www.w3.org/2005/Atom link"`
	PageName   string         `xml:"http://schemas.google.com/sites/2008 pageName,omitempty"`
}

type atomCategory struct {
	Scheme string `xml:"scheme,attr"`
	Term   string `xml:"term,attr"`
	Label  string `xml:"label,attr,omitempty"`
}

type atomContent struct {
	Type  string `xml:"type,attr"`
	Inner string `xml:",innerxml"`
}

type atomLink struct {
	Rel  string `xml:"rel,attr"`
	Type string `xml:"type,attr,omitempty"`
	Href string `xml:"href,attr"`
}

// link returns the href of the first link with the given relation.
func (e *atomEntry) link(rel string) string {
	for _, l := range e.Links {
		if l.Rel == rel {
			return l.Href
		}
	}
	return ""
}

// xhtmlContent wraps an XHTML fragment in the div the content feed requires.
func xhtmlContent(fragment string) *atomContent {
	return &atomContent{
		Type:  "xhtml",
		Inner: `<div xmlns="` + nsXHTML + `">` + fragment + `</div>`,
	}
}
