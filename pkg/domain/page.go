package domain

// QuestionType enumerates the supported question widgets.
type QuestionType string

const (
	QuestionText           QuestionType = "text"
	QuestionShortAnswer    QuestionType = "shortAnswer"
	QuestionLongAnswer     QuestionType = "longAnswer"
	QuestionMultipleChoice QuestionType = "multipleChoice"
	QuestionCheckbox       QuestionType = "checkbox"
	QuestionDropdown       QuestionType = "dropdown"
	QuestionDate           QuestionType = "date"
	QuestionLinearScale    QuestionType = "linearScale"
	QuestionRating         QuestionType = "rating"
	QuestionFileUpload     QuestionType = "fileUpload"
	QuestionImage          QuestionType = "image"
	QuestionVideo          QuestionType = "video"
)

// QuestionTypes lists every supported question type.
var QuestionTypes = []QuestionType{
	QuestionText, QuestionShortAnswer, QuestionLongAnswer, QuestionMultipleChoice,
	QuestionCheckbox, QuestionDropdown, QuestionDate, QuestionLinearScale,
	QuestionRating, QuestionFileUpload, QuestionImage, QuestionVideo,
}

// Valid reports whether t is a supported question type.
func (t QuestionType) Valid() bool {
	for _, known := range QuestionTypes {
		if t == known {
			return true
		}
	}
	return false
}

// IsMedia reports whether the question displays an uploaded image or video.
func (t QuestionType) IsMedia() bool {
	return t == QuestionImage || t == QuestionVideo
}

// Defaults applied to new pages, sections and questions.
const (
	DefaultPageName          = "New Page"
	DefaultPageBackground    = "#FFFFFF"
	DefaultSectionBackground = "#F0F0F0"
	DefaultMaxFiles          = 1
	DefaultMaxFileSizeMB     = 5
	DefaultMinRating         = 1
	DefaultMaxRating         = 5
	DefaultFirstPageName     = "Page 01"
	DefaultFirstSectionName  = "Default Section"
)

// FileSettings constrains answers of fileUpload questions.
type FileSettings struct {
	MaxFiles     int      `json:"maxFiles" yaml:"maxFiles"`
	MaxSizeMB    int      `json:"maxSizeMB" yaml:"maxSizeMB"`
	AllowedTypes []string `json:"allowedTypes,omitempty" yaml:"allowedTypes,omitempty"`
}

// Question is a single prompt inside a section.
type Question struct {
	ID           string        `json:"id" yaml:"id"`
	QuestionText string        `json:"questionText" yaml:"questionText"`
	Type         QuestionType  `json:"type" yaml:"type"`
	Options      []string      `json:"options,omitempty" yaml:"options,omitempty"`
	MediaURL     string        `json:"mediaUrl,omitempty" yaml:"mediaUrl,omitempty"`
	FileSettings *FileSettings `json:"fileSettings,omitempty" yaml:"fileSettings,omitempty"`
	Placeholder  string        `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
	MinRating    int           `json:"minRating,omitempty" yaml:"minRating,omitempty"`
	MaxRating    int           `json:"maxRating,omitempty" yaml:"maxRating,omitempty"`
	Labels       []string      `json:"labels,omitempty" yaml:"labels,omitempty"`
	Required     bool          `json:"isRequired,omitempty" yaml:"isRequired,omitempty"`
}

// RatingBounds returns the scale of a rating or linear scale question,
// falling back to the defaults for unset bounds.
func (q *Question) RatingBounds() (int, int) {
	lo, hi := q.MinRating, q.MaxRating
	if lo == 0 {
		lo = DefaultMinRating
	}
	if hi == 0 {
		hi = DefaultMaxRating
	}
	return lo, hi
}

// Section groups questions within a page.
type Section struct {
	ID              string     `json:"id" yaml:"id"`
	Name            string     `json:"name" yaml:"name"`
	BackgroundColor string     `json:"backgroundColor,omitempty" yaml:"backgroundColor,omitempty"`
	Questions       []Question `json:"questions" yaml:"questions"`
}

// Condition is a single predicate of a branching rule.
// An empty AnswerCriteria matches any non-empty answer.
type Condition struct {
	QuestionID     string `json:"questionId" yaml:"questionId"`
	AnswerCriteria string `json:"answerCriteria" yaml:"answerCriteria"`
}

// ConditionalLogic routes the filler to TruePageID when every condition holds,
// to FalsePageID otherwise.
type ConditionalLogic struct {
	Conditions  []Condition `json:"conditions" yaml:"conditions"`
	TruePageID  string      `json:"truePageId,omitempty" yaml:"truePageId,omitempty"`
	FalsePageID string      `json:"falsePageId,omitempty" yaml:"falsePageId,omitempty"`
}

// Page is one step of a form.
// NextPageID and PrevPageID are derived by the flow builder and are fully
// recomputed on every build.
type Page struct {
	ID               string            `json:"id" yaml:"id"`
	Name             string            `json:"name" yaml:"name"`
	BackgroundColor  string            `json:"backgroundColor,omitempty" yaml:"backgroundColor,omitempty"`
	Sections         []Section         `json:"sections" yaml:"sections"`
	ConditionalLogic *ConditionalLogic `json:"conditionalLogic,omitempty" yaml:"conditionalLogic,omitempty"`
	NextPageID       []string          `json:"nextPageId" yaml:"nextPageId"`
	PrevPageID       []string          `json:"prevPageId" yaml:"prevPageId"`
}

// Questions returns the page's questions in display order.
func (p *Page) Questions() []Question {
	var out []Question
	for _, s := range p.Sections {
		out = append(out, s.Questions...)
	}
	return out
}

// Question returns the question with the given id on this page.
func (p *Page) Question(id string) (*Question, bool) {
	for si := range p.Sections {
		for qi := range p.Sections[si].Questions {
			if p.Sections[si].Questions[qi].ID == id {
				return &p.Sections[si].Questions[qi], true
			}
		}
	}
	return nil, false
}

// IsTerminal reports whether the page has no outgoing edge.
func (p *Page) IsTerminal() bool { return len(p.NextPageID) == 0 }

// Clone returns a deep copy of the page.
func (p Page) Clone() Page {
	c := p
	c.NextPageID = append([]string(nil), p.NextPageID...)
	c.PrevPageID = append([]string(nil), p.PrevPageID...)
	if p.Sections != nil {
		c.Sections = make([]Section, len(p.Sections))
		for i, s := range p.Sections {
			cs := s
			if s.Questions != nil {
				cs.Questions = make([]Question, len(s.Questions))
				for j, q := range s.Questions {
					cq := q
					cq.Options = append([]string(nil), q.Options...)
					cq.Labels = append([]string(nil), q.Labels...)
					if q.FileSettings != nil {
						fs := *q.FileSettings
						fs.AllowedTypes = append([]string(nil), q.FileSettings.AllowedTypes...)
						cq.FileSettings = &fs
					}
					cs.Questions[j] = cq
				}
			}
			c.Sections[i] = cs
		}
	}
	if p.ConditionalLogic != nil {
		logic := *p.ConditionalLogic
		logic.Conditions = append([]Condition(nil), p.ConditionalLogic.Conditions...)
		c.ConditionalLogic = &logic
	}
	return c
}

// ClonePages deep-copies a page list.
func ClonePages(pages []Page) []Page {
	if pages == nil {
		return nil
	}
	out := make([]Page, len(pages))
	for i, p := range pages {
		out[i] = p.Clone()
	}
	return out
}

// NewPage returns a page with default styling and a single empty section.
func NewPage(name string) Page {
	if name == "" {
		name = DefaultPageName
	}
	return Page{
		ID:              NewElementID("page"),
		Name:            name,
		BackgroundColor: DefaultPageBackground,
		Sections: []Section{{
			ID:              NewElementID("sec"),
			Name:            DefaultFirstSectionName,
			BackgroundColor: DefaultSectionBackground,
			Questions:       []Question{},
		}},
		NextPageID: []string{},
		PrevPageID: []string{},
	}
}
