package messages

// FlexContainer is the top level of a flex message: a Bubble or a Carousel.
type FlexContainer interface {
	Component
	isContainer()
}

// Component is any flex element that can appear in a box.
type Component interface {
	MarshalJSON() ([]byte, error)
	isComponent()
}

// Bubble is a single card.
type Bubble struct {
	Size   string `json:"size,omitempty"`
	Hero   *Image `json:"hero,omitempty"`
	Body   *Box   `json:"body,omitempty"`
	Footer *Box   `json:"footer,omitempty"`
}

// Carousel is a horizontally scrollable list of bubbles.
type Carousel struct {
	Contents []Bubble `json:"contents"`
}

// Box lays out its children vertically, horizontally or as a baseline row.
type Box struct {
	Layout          string      `json:"layout"`
	Contents        []Component `json:"contents"`
	Spacing         string      `json:"spacing,omitempty"`
	Margin          string      `json:"margin,omitempty"`
	PaddingAll      string      `json:"paddingAll,omitempty"`
	BackgroundColor string      `json:"backgroundColor,omitempty"`
}

// Text is a block of text inside a box.
type Text struct {
	Text   string `json:"text"`
	Size   string `json:"size,omitempty"`
	Weight string `json:"weight,omitempty"`
	Color  string `json:"color,omitempty"`
	Align  string `json:"align,omitempty"`
	Margin string `json:"margin,omitempty"`
	Wrap   bool   `json:"wrap,omitempty"`
	Flex   *int   `json:"flex,omitempty"`
}

// Image is a picture, usually used as a bubble hero.
type Image struct {
	URL         string  `json:"url"`
	Size        string  `json:"size,omitempty"`
	AspectRatio string  `json:"aspectRatio,omitempty"`
	AspectMode  string  `json:"aspectMode,omitempty"`
	Action      *Action `json:"action,omitempty"`
}

// Button is a tappable button bound to an action.
type Button struct {
	Action Action `json:"action"`
	Style  string `json:"style,omitempty"`
	Color  string `json:"color,omitempty"`
	Height string `json:"height,omitempty"`
	Margin string `json:"margin,omitempty"`
}

// Separator draws a horizontal rule.
type Separator struct {
	Margin string `json:"margin,omitempty"`
}

// Action is what happens when a button or image is tapped.
// Type is one of "uri", "postback" or "message".
type Action struct {
	Type        string `json:"type"`
	Label       string `json:"label,omitempty"`
	URI         string `json:"uri,omitempty"`
	Data        string `json:"data,omitempty"`
	DisplayText string `json:"displayText,omitempty"`
	Text        string `json:"text,omitempty"`
}

// URIAction opens uri.
func URIAction(label, uri string) Action {
	return Action{Type: "uri", Label: label, URI: uri}
}

// PostbackAction sends data back to the webhook; displayText is echoed in the chat.
func PostbackAction(label, data, displayText string) Action {
	return Action{Type: "postback", Label: label, Data: data, DisplayText: displayText}
}

// MessageAction makes the user send text.
func MessageAction(label, text string) Action {
	return Action{Type: "message", Label: label, Text: text}
}

func (Bubble) isContainer()   {}
func (Carousel) isContainer() {}

func (Bubble) isComponent()    {}
func (Carousel) isComponent()  {}
func (Box) isComponent()       {}
func (Text) isComponent()      {}
func (Image) isComponent()     {}
func (Button) isComponent()    {}
func (Separator) isComponent() {}

// MarshalJSON implements json.Marshaler.
func (b Bubble) MarshalJSON() ([]byte, error) {
	type alias Bubble
	return marshalTyped("bubble", alias(b))
}

// MarshalJSON implements json.Marshaler.
func (c Carousel) MarshalJSON() ([]byte, error) {
	type alias Carousel
	return marshalTyped("carousel", alias(c))
}

// MarshalJSON implements json.Marshaler.
func (b Box) MarshalJSON() ([]byte, error) {
	type alias Box
	if b.Contents == nil {
		b.Contents = []Component{}
	}
	return marshalTyped("box", alias(b))
}

// MarshalJSON implements json.Marshaler.
func (t Text) MarshalJSON() ([]byte, error) {
	type alias Text
	return marshalTyped("text", alias(t))
}

// MarshalJSON implements json.Marshaler.
func (i Image) MarshalJSON() ([]byte, error) {
	type alias Image
	return marshalTyped("image", alias(i))
}

// MarshalJSON implements json.Marshaler.
func (b Button) MarshalJSON() ([]byte, error) {
	type alias Button
	return marshalTyped("button", alias(b))
}

// MarshalJSON implements json.Marshaler.
func (s Separator) MarshalJSON() ([]byte, error) {
	type alias Separator
	return marshalTyped("separator", alias(s))
}

// VBox is a vertical box.
func VBox(contents ...Component) Box {
	return Box{Layout: "vertical", Contents: contents}
}

// HBox is a horizontal box.
func HBox(contents ...Component) Box {
	return Box{Layout: "horizontal", Contents: contents}
}
