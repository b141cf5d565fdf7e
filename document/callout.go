package document

import (
	"sort"
	"strings"
)

// CalloutColor groups callout types into the palette renderers theme against.
type CalloutColor string

const (
	CalloutBlue   CalloutColor = "blue"
	CalloutTeal   CalloutColor = "teal"
	CalloutCyan   CalloutColor = "cyan"
	CalloutGreen  CalloutColor = "green"
	CalloutYellow CalloutColor = "yellow"
	CalloutOrange CalloutColor = "orange"
	CalloutRed    CalloutColor = "red"
	CalloutPurple CalloutColor = "purple"
	CalloutGray   CalloutColor = "gray"
)

// CalloutDefinition describes how a known callout type is presented.
type CalloutDefinition struct {
	Color CalloutColor
	Icon  string
}

// GenericCallout is the presentation used for types outside the catalogue.
var GenericCallout = CalloutDefinition{Color: CalloutGray, Icon: "pencil"}

var calloutCatalogue = map[string]CalloutDefinition{
	"note":      {CalloutBlue, "pencil"},
	"abstract":  {CalloutTeal, "clipboard-list"},
	"summary":   {CalloutTeal, "clipboard-list"},
	"tldr":      {CalloutTeal, "clipboard-list"},
	"info":      {CalloutBlue, "info"},
	"todo":      {CalloutBlue, "circle-check"},
	"tip":       {CalloutCyan, "flame"},
	"hint":      {CalloutCyan, "flame"},
	"important": {CalloutCyan, "flame"},
	"success":   {CalloutGreen, "check"},
	"check":     {CalloutGreen, "check"},
	"done":      {CalloutGreen, "check"},
	"question":  {CalloutYellow, "circle-help"},
	"help":      {CalloutYellow, "circle-help"},
	"faq":       {CalloutYellow, "circle-help"},
	"warning":   {CalloutOrange, "triangle-alert"},
	"caution":   {CalloutOrange, "triangle-alert"},
	"attention": {CalloutOrange, "triangle-alert"},
	"failure":   {CalloutRed, "x"},
	"fail":      {CalloutRed, "x"},
	"missing":   {CalloutRed, "x"},
	"danger":    {CalloutRed, "zap"},
	"error":     {CalloutRed, "zap"},
	"bug":       {CalloutRed, "bug"},
	"example":   {CalloutPurple, "list"},
	"quote":     {CalloutGray, "quote"},
	"cite":      {CalloutGray, "quote"},
}

// LookupCallout resolves a callout type name against the known catalogue.
// Matching is case-insensitive. ok is false for unknown names, which are
// still valid callout types; callers render those with GenericCallout.
func LookupCallout(name string) (CalloutDefinition, bool) {
	def, ok := calloutCatalogue[strings.ToLower(name)]
	return def, ok
}

// KnownCalloutTypes returns the catalogue's type names in sorted order.
func KnownCalloutTypes() []string {
	names := make([]string, 0, len(calloutCatalogue))
	for name := range calloutCatalogue {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
