// Package pageinfo extracts structural page-level information from a
// document snapshot: metadata, document outline, links, forms, media,
// embedded structured data, and pagination hints.
//
// It complements the action graph produced by pkg/analyze: the graph tells
// an agent what it can do, pageinfo tells it what the page is. Both operate
// on the same immutable dom.Element snapshot and perform no I/O.
package pageinfo

import (
	"strconv"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/entrhq/pagegraph/pkg/analyze"
	"github.com/entrhq/pagegraph/pkg/dom"
)

// Meta is the page's descriptive metadata.
type Meta struct {
	URL         string            `json:"url"`
	Title       string            `json:"title"`
	Canonical   string            `json:"canonical,omitempty"`
	Description string            `json:"description,omitempty"`
	Keywords    string            `json:"keywords,omitempty"`
	Viewport    string            `json:"viewport,omitempty"`
	OpenGraph   map[string]string `json:"openGraph,omitempty"`
}

// OutlineEntry is one heading in the document outline.
type OutlineEntry struct {
	Level int    `json:"level"`
	Text  string `json:"text"`
	ID    string `json:"id,omitempty"`
}

// Link is one hyperlink.
type Link struct {
	Href   string `json:"href"`
	Text   string `json:"text"`
	Target string `json:"target,omitempty"`
	Rel    string `json:"rel,omitempty"`
}

// Option is one choice in a select field.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// FormField is one input-like element inside a form.
type FormField struct {
	Type        string   `json:"type"`
	Name        string   `json:"name,omitempty"`
	ID          string   `json:"id,omitempty"`
	Placeholder string   `json:"placeholder,omitempty"`
	Value       string   `json:"value,omitempty"`
	Required    bool     `json:"required"`
	Pattern     string   `json:"pattern,omitempty"`
	Min         string   `json:"min,omitempty"`
	Max         string   `json:"max,omitempty"`
	Options     []Option `json:"options,omitempty"`
}

// Form is one form with its fields.
type Form struct {
	ID     string      `json:"id,omitempty"`
	Action string      `json:"action,omitempty"`
	Method string      `json:"method,omitempty"`
	Fields []FormField `json:"fields"`
}

// Media is one embedded media element.
type Media struct {
	Kind     string `json:"kind"`
	Src      string `json:"src,omitempty"`
	Alt      string `json:"alt,omitempty"`
	Controls bool   `json:"controls,omitempty"`
	Autoplay bool   `json:"autoplay,omitempty"`
	Loop     bool   `json:"loop,omitempty"`
	Muted    bool   `json:"muted,omitempty"`
}

// Page is one numbered entry in a pagination control.
type Page struct {
	Number int    `json:"number,omitempty"`
	Href   string `json:"href"`
}

// Pagination holds rel=next/prev hints plus numbered page links found in
// pagination-styled containers.
type Pagination struct {
	Next  string `json:"next,omitempty"`
	Prev  string `json:"prev,omitempty"`
	Pages []Page `json:"pages,omitempty"`
}

// PageInfo is the combined structural report for one page snapshot.
type PageInfo struct {
	Meta           Meta                     `json:"meta"`
	Outline        []OutlineEntry           `json:"outline,omitempty"`
	Links          []Link                   `json:"links,omitempty"`
	Forms          []Form                   `json:"forms,omitempty"`
	Media          []Media                  `json:"media,omitempty"`
	StructuredData []map[string]interface{} `json:"structuredData,omitempty"`
	Pagination     Pagination               `json:"pagination"`
}

var headingLevels = map[string]int{
	"h1": 1, "h2": 2, "h3": 3, "h4": 4, "h5": 5, "h6": 6,
}

// Analyze walks the snapshot once and returns the structural report. It
// never fails: malformed fragments (including unparsable structured-data
// payloads) are skipped individually.
func Analyze(root dom.Element, pageURL string) *PageInfo {
	info := &PageInfo{Meta: Meta{URL: pageURL}}
	if root == nil {
		return info
	}
	walk(root, info, false)
	return info
}

// walk visits every element once. inPagination marks subtrees whose page
// links an enclosing pagination container already collected.
func walk(el dom.Element, info *PageInfo, inPagination bool) {
	tag := strings.ToLower(el.TagName())

	switch {
	case tag == "title":
		if info.Meta.Title == "" {
			info.Meta.Title = strings.TrimSpace(el.TextContent())
		}
	case tag == "meta":
		collectMeta(el, info)
	case tag == "link":
		if strings.EqualFold(dom.AttrValue(el, "rel"), "canonical") {
			info.Meta.Canonical = dom.AttrValue(el, "href")
		}
	case tag == "a":
		collectLink(el, info)
	case tag == "form":
		info.Forms = append(info.Forms, collectForm(el))
	case tag == "img" || tag == "video" || tag == "audio":
		collectMedia(el, tag, info)
	case tag == "script":
		collectStructuredData(el, info)
	case headingLevels[tag] > 0:
		info.Outline = append(info.Outline, OutlineEntry{
			Level: headingLevels[tag],
			Text:  strings.TrimSpace(el.TextContent()),
			ID:    dom.AttrValue(el, "id"),
		})
	}

	if isPaginationContainer(el) {
		if !inPagination {
			collectPages(el, info)
		}
		inPagination = true
	}

	for _, child := range el.Children() {
		walk(child, info, inPagination)
	}
}

func isPaginationContainer(el dom.Element) bool {
	class := strings.ToLower(dom.AttrValue(el, "class"))
	return strings.Contains(class, "pagination") || strings.Contains(class, "pager")
}

// collectPages gathers the numbered links of a pagination control. Links
// whose text is not a number (next/prev arrows, ellipses) keep a zero number.
func collectPages(container dom.Element, info *PageInfo) {
	var descend func(el dom.Element)
	descend = func(el dom.Element) {
		if strings.ToLower(el.TagName()) == "a" {
			if href := dom.AttrValue(el, "href"); href != "" {
				page := Page{Href: href}
				if n, err := strconv.Atoi(strings.TrimSpace(el.TextContent())); err == nil {
					page.Number = n
				}
				info.Pagination.Pages = append(info.Pagination.Pages, page)
			}
		}
		for _, child := range el.Children() {
			descend(child)
		}
	}
	for _, child := range container.Children() {
		descend(child)
	}
}

func collectMeta(el dom.Element, info *PageInfo) {
	content := dom.AttrValue(el, "content")
	if content == "" {
		return
	}

	switch strings.ToLower(dom.AttrValue(el, "name")) {
	case "description":
		info.Meta.Description = content
	case "keywords":
		info.Meta.Keywords = content
	case "viewport":
		info.Meta.Viewport = content
	}

	property := strings.ToLower(dom.AttrValue(el, "property"))
	if strings.HasPrefix(property, "og:") {
		if info.Meta.OpenGraph == nil {
			info.Meta.OpenGraph = map[string]string{}
		}
		info.Meta.OpenGraph[strings.TrimPrefix(property, "og:")] = content
	}
}

func collectLink(el dom.Element, info *PageInfo) {
	href := dom.AttrValue(el, "href")
	if href == "" {
		return
	}

	rel := dom.AttrValue(el, "rel")
	info.Links = append(info.Links, Link{
		Href:   href,
		Text:   strings.TrimSpace(el.TextContent()),
		Target: dom.AttrValue(el, "target"),
		Rel:    rel,
	})

	for _, token := range strings.Fields(strings.ToLower(rel)) {
		switch token {
		case "next":
			info.Pagination.Next = href
		case "prev", "previous":
			info.Pagination.Prev = href
		}
	}
}

func collectForm(formEl dom.Element) Form {
	form := Form{
		ID:     dom.AttrValue(formEl, "id"),
		Action: dom.AttrValue(formEl, "action"),
		Method: dom.AttrValue(formEl, "method"),
		Fields: []FormField{},
	}

	var collectFields func(el dom.Element)
	collectFields = func(el dom.Element) {
		switch strings.ToLower(el.TagName()) {
		case "input":
			form.Fields = append(form.Fields, fieldFrom(el, inputFieldType(el)))
		case "textarea":
			form.Fields = append(form.Fields, fieldFrom(el, "textarea"))
		case "select":
			field := fieldFrom(el, "select")
			for _, opt := range el.Children() {
				if strings.ToLower(opt.TagName()) != "option" {
					continue
				}
				field.Options = append(field.Options, Option{
					Value: dom.AttrValue(opt, "value"),
					Label: strings.TrimSpace(opt.TextContent()),
				})
			}
			form.Fields = append(form.Fields, field)
			return // options already handled
		}
		for _, child := range el.Children() {
			collectFields(child)
		}
	}
	for _, child := range formEl.Children() {
		collectFields(child)
	}
	return form
}

func inputFieldType(el dom.Element) string {
	if t := strings.ToLower(dom.AttrValue(el, "type")); t != "" {
		return t
	}
	return "text"
}

// fieldFrom builds a field record. Values of sensitive fields are withheld,
// mirroring the redaction rule the action graph enforces.
func fieldFrom(el dom.Element, fieldType string) FormField {
	field := FormField{
		Type:        fieldType,
		Name:        dom.AttrValue(el, "name"),
		ID:          dom.AttrValue(el, "id"),
		Placeholder: dom.AttrValue(el, "placeholder"),
		Pattern:     dom.AttrValue(el, "pattern"),
		Min:         dom.AttrValue(el, "min"),
		Max:         dom.AttrValue(el, "max"),
	}
	if _, ok := dom.Attr(el, "required"); ok {
		field.Required = true
	}
	if !analyze.IsSensitive(el) {
		field.Value = dom.AttrValue(el, "value")
	}
	return field
}

func collectMedia(el dom.Element, kind string, info *PageInfo) {
	media := Media{
		Kind: kind,
		Src:  dom.AttrValue(el, "src"),
		Alt:  dom.AttrValue(el, "alt"),
	}
	_, media.Controls = dom.Attr(el, "controls")
	_, media.Autoplay = dom.Attr(el, "autoplay")
	_, media.Loop = dom.Attr(el, "loop")
	_, media.Muted = dom.Attr(el, "muted")
	info.Media = append(info.Media, media)
}

// collectStructuredData parses JSON-LD payloads best-effort: a malformed
// payload is skipped, never reported as a page-level error. Top-level
// arrays contribute each object entry individually.
func collectStructuredData(el dom.Element, info *PageInfo) {
	if !strings.EqualFold(strings.TrimSpace(dom.AttrValue(el, "type")), "application/ld+json") {
		return
	}

	payload := strings.TrimSpace(el.TextContent())
	if payload == "" || !gjson.Valid(payload) {
		return
	}

	parsed := gjson.Parse(payload)
	appendEntry := func(v gjson.Result) {
		if entry, ok := v.Value().(map[string]interface{}); ok {
			info.StructuredData = append(info.StructuredData, entry)
		}
	}

	if parsed.IsArray() {
		for _, v := range parsed.Array() {
			appendEntry(v)
		}
		return
	}
	appendEntry(parsed)
}
