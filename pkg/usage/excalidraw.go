package usage

import (
	"encoding/json"
	"math/rand/v2"
	"strconv"
	"time"
	"unicode/utf8"
)

// DefaultExcalidrawSource identifies the editor the scene is meant for.
const DefaultExcalidrawSource = "https://marketplace.visualstudio.com/items?itemName=pomdtr.excalidraw-editor"

// Scene layout, in scene units.
const (
	exportBoxWidth   = 200
	exportBoxHeight  = 50
	pageColumnOffset = 220
	pageListOffset   = 60
	pageBoxHeight    = 30
	pageRowHeight    = 40
	exportRowHeight  = 200
	charWidth        = 10
	randomRange      = 100000
)

// Scene is an Excalidraw document.
type Scene struct {
	Type     string    `json:"type"`
	Version  int       `json:"version"`
	Source   string    `json:"source"`
	Elements []Element `json:"elements"`
}

// Element is a rectangle or, when Text is set, a text label.
type Element struct {
	Type            string   `json:"type"`
	Version         int      `json:"version"`
	VersionNonce    int      `json:"versionNonce"`
	IsDeleted       bool     `json:"isDeleted"`
	ID              string   `json:"id"`
	FillStyle       string   `json:"fillStyle"`
	StrokeWidth     int      `json:"strokeWidth"`
	StrokeStyle     string   `json:"strokeStyle"`
	Roughness       int      `json:"roughness"`
	Opacity         int      `json:"opacity"`
	Angle           int      `json:"angle"`
	X               int      `json:"x"`
	Y               int      `json:"y"`
	StrokeColor     string   `json:"strokeColor"`
	BackgroundColor string   `json:"backgroundColor"`
	Width           int      `json:"width"`
	Height          int      `json:"height"`
	Seed            int      `json:"seed"`
	GroupIDs        []string `json:"groupIds"`
	FrameID         *string  `json:"frameId"`
	Roundness       *string  `json:"roundness"`
	BoundElements   []string `json:"boundElements"`
	Updated         int64    `json:"updated"`
	Link            *string  `json:"link"`
	Locked          bool     `json:"locked"`
	*Text
}

// Text holds the fields only text elements carry.
type Text struct {
	FontSize      int     `json:"fontSize"`
	FontFamily    int     `json:"fontFamily"`
	Text          string  `json:"text"`
	TextAlign     string  `json:"textAlign"`
	VerticalAlign string  `json:"verticalAlign"`
	ContainerID   *string `json:"containerId"`
	OriginalText  string  `json:"originalText"`
	LineHeight    float64 `json:"lineHeight"`
	Baseline      int     `json:"baseline"`
}

// ExcalidrawOptions controls the non-deterministic parts of a scene.
// Zero values use the editor source URL, math/rand and time.Now.
type ExcalidrawOptions struct {
	Source string
	// Rand returns a number in [0, n).
	Rand func(n int) int
	Now  func() time.Time
}

func (o ExcalidrawOptions) withDefaults() ExcalidrawOptions {
	if o.Source == "" {
		o.Source = DefaultExcalidrawSource
	}
	if o.Rand == nil {
		o.Rand = rand.IntN
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	return o
}

// BuildExcalidraw lays record out as a scene: one box per export, stacked
// vertically, with the boxes of its pages stacked to its right.
func BuildExcalidraw(record *Record, opts ExcalidrawOptions) (*Scene, error) {
	if err := checkRecord(record); err != nil {
		return nil, err
	}
	opts = opts.withDefaults()

	b := sceneBuilder{opts: opts, updated: opts.Now().UnixMilli()}
	x, y := 0, 0

	for _, entry := range record.Entries() {
		b.rectangle(entry.Name, x, y, exportBoxWidth, exportBoxHeight)
		b.text(entry.Name+"-label", entry.Name, x+10, y+15, exportBoxWidth, 16)

		pageY := y + pageListOffset
		for i, page := range entry.Pages {
			boxWidth := max(exportBoxWidth, utf8.RuneCountInString(page)*charWidth+20)
			id := entry.Name + "-page-" + strconv.Itoa(i)

			b.rectangle(id+"-box", x+pageColumnOffset, pageY, boxWidth, pageBoxHeight)
			b.text(id, page, x+pageColumnOffset+5, pageY+5, boxWidth-10, 14)

			pageY += pageRowHeight
		}

		y += exportRowHeight
	}

	return &Scene{
		Type:     "excalidraw",
		Version:  2,
		Source:   opts.Source,
		Elements: b.elements,
	}, nil
}

// RenderExcalidraw renders record as an indented Excalidraw JSON document.
func RenderExcalidraw(record *Record, opts ExcalidrawOptions) ([]byte, error) {
	scene, err := BuildExcalidraw(record, opts)
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(scene, "", "  ")
}

type sceneBuilder struct {
	opts     ExcalidrawOptions
	updated  int64
	elements []Element
}

func (b *sceneBuilder) base(kind, id string, x, y, width, height int) Element {
	return Element{
		Type:          kind,
		Version:       1,
		VersionNonce:  b.opts.Rand(randomRange),
		ID:            id,
		StrokeWidth:   1,
		StrokeStyle:   "solid",
		Roughness:     1,
		Opacity:       100,
		X:             x,
		Y:             y,
		StrokeColor:   "#000000",
		Width:         width,
		Height:        height,
		Seed:          b.opts.Rand(randomRange),
		GroupIDs:      []string{},
		BoundElements: []string{},
		Updated:       b.updated,
	}
}

func (b *sceneBuilder) rectangle(id string, x, y, width, height int) {
	el := b.base("rectangle", id, x, y, width, height)
	el.FillStyle = "solid"
	el.BackgroundColor = "#f3f3f3"
	b.elements = append(b.elements, el)
}

func (b *sceneBuilder) text(id, content string, x, y, width, fontSize int) {
	el := b.base("text", id, x, y, width, pageBoxHeight)
	el.FillStyle = "hachure"
	el.BackgroundColor = "transparent"
	el.Text = &Text{
		FontSize:      fontSize,
		FontFamily:    1,
		Text:          content,
		TextAlign:     "left",
		VerticalAlign: "top",
		OriginalText:  content,
		LineHeight:    1.875,
		Baseline:      19,
	}
	b.elements = append(b.elements, el)
}
