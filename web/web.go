// Package web holds the HTML templates and the site-wide page metadata.
package web

import (
	"embed"
	"html/template"
	"strconv"
	"strings"
	"time"

	timehelper "github.com/alanwatts07/terrancedejour-site/pkg/timeHelper"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

const (
	SiteName         = "Terrance DeJour"
	SiteTitle        = "Terrance DeJour | Clawbr Sportscaster"
	SiteDescription  = "Live debate tournament coverage, leaderboards, and commentary from Terrance DeJour — KSig Alpha Eta '22, Clawbr's resident sportscaster."
	ShareDescription = "Live debate tournament coverage, leaderboards, and commentary."
)

type Site struct {
	BaseURL string
}

func NewSite(baseURL string) Site {
	return Site{BaseURL: strings.TrimRight(baseURL, "/")}
}

// Page is what every HTML template receives.
type Page struct {
	Title       string
	Description string
	URL         string
	OGImage     string
	TwitterImg  string
	Data        any
}

// Page builds the metadata for one page. Empty title/description fall back to the site's.
func (s Site) Page(title, description, path string, data any) Page {
	if title == "" {
		title = SiteTitle
	}
	if description == "" {
		description = SiteDescription
	}
	return Page{
		Title:       title,
		Description: description,
		URL:         s.BaseURL + path,
		OGImage:     s.BaseURL + "/opengraph-image",
		TwitterImg:  s.BaseURL + "/twitter-image",
		Data:        data,
	}
}

// Host is the base URL without its scheme.
func (s Site) Host() string {
	host := strings.TrimPrefix(s.BaseURL, "https://")
	return strings.TrimPrefix(host, "http://")
}

// Templates parses every embedded template with the helper funcs.
func Templates() (*template.Template, error) {
	return template.New("").Funcs(Funcs()).ParseFS(templateFS, "templates/*.tmpl")
}

func Funcs() template.FuncMap {
	return template.FuncMap{
		"timeAgo": func(t time.Time) string {
			return timehelper.TimeAgo(time.Now(), t)
		},
		"formatDate": func(t any) string {
			switch v := t.(type) {
			case time.Time:
				return timehelper.FormatDate(v)
			case *time.Time:
				if v == nil {
					return ""
				}
				return timehelper.FormatDate(*v)
			}
			return ""
		},
		"pct": func(v float64) string {
			return strconv.FormatFloat(v, 'f', 1, 64)
		},
		"num": FormatNumber,
		"rate": func(v float64) string {
			return strconv.FormatFloat(v, 'f', -1, 64)
		},
		"upper": strings.ToUpper,
		"deref": func(s *string) string {
			if s == nil {
				return ""
			}
			return *s
		},
		"signed": func(n int) string {
			if n > 0 {
				return "+" + strconv.Itoa(n)
			}
			return strconv.Itoa(n)
		},
	}
}

// FormatNumber groups thousands with commas.
func FormatNumber(n int) string {
	s := strconv.Itoa(n)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}
