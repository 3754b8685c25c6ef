package newznab

import (
	"encoding/xml"
	"strconv"
	"time"
)

// feed is the RSS document returned by search requests. Errors come back as a
// bare <error> root element, which XMLName leaves unmatched.
type feed struct {
	XMLName xml.Name
	Channel struct {
		Items []item `xml:"item"`
	} `xml:"channel"`
	Error *apiError
}

type apiError struct {
	Code        string `xml:"code,attr"`
	Description string `xml:"description,attr"`
}

// UnmarshalXML accepts both <rss> and <error> roots.
func (f *feed) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	f.XMLName = start.Name
	if start.Name.Local == "error" {
		f.Error = &apiError{}
		for _, a := range start.Attr {
			switch a.Name.Local {
			case "code":
				f.Error.Code = a.Value
			case "description":
				f.Error.Description = a.Value
			}
		}
		return d.Skip()
	}
	type plain feed
	return d.DecodeElement((*plain)(f), &start)
}

type item struct {
	Title     string `xml:"title"`
	GUID      string `xml:"guid"`
	Link      string `xml:"link"`
	PubDate   string `xml:"pubDate"`
	Enclosure struct {
		URL    string `xml:"url,attr"`
		Length int64  `xml:"length,attr"`
	} `xml:"enclosure"`
	Attrs []struct {
		Name  string `xml:"name,attr"`
		Value string `xml:"value,attr"`
	} `xml:"http://www.newznab.com/DTD/2010/feeds/attributes/ attr"`
}

var pubDateLayouts = []string{time.RFC1123Z, time.RFC1123, "Mon, 2 Jan 2006 15:04:05 -0700"}

func (it item) attr(name string) string {
	for _, a := range it.Attrs {
		if a.Name == name {
			return a.Value
		}
	}
	return ""
}

func (it item) release(indexer string) Release {
	r := Release{Title: it.Title, GUID: it.GUID, DownloadURL: it.Link, Indexer: indexer}
	if r.DownloadURL == "" {
		r.DownloadURL = it.Enclosure.URL
	}
	r.Size = it.Enclosure.Length
	if r.Size == 0 {
		r.Size, _ = strconv.ParseInt(it.attr("size"), 10, 64)
	}
	for _, layout := range pubDateLayouts {
		if t, err := time.Parse(layout, it.PubDate); err == nil {
			r.PublishDate = t
			break
		}
	}
	return r
}
