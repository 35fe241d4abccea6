package domain

import "time"

// FormStatus is the publication state of a form.
type FormStatus string

const (
	FormStatusDraft     FormStatus = "draft"
	FormStatusPublished FormStatus = "published"
)

// Visibility controls who may open a published form.
type Visibility string

const (
	VisibilityPublic  Visibility = "public"
	VisibilityPrivate Visibility = "private"
)

// AccessLevel is the permission granted to a user a form is shared with.
type AccessLevel string

const (
	AccessView  AccessLevel = "view"
	AccessShare AccessLevel = "share"
	AccessEdit  AccessLevel = "edit"
)

// Rank orders access levels: view < share < edit.
// Unknown levels rank zero.
func (l AccessLevel) Rank() int {
	switch l {
	case AccessView:
		return 1
	case AccessShare:
		return 2
	case AccessEdit:
		return 3
	}
	return 0
}

// Valid reports whether l is a known access level.
func (l AccessLevel) Valid() bool { return l.Rank() > 0 }

// SharedUser is an entry of a form's share list.
type SharedUser struct {
	UserID      string      `json:"userId" yaml:"userId"`
	AccessLevel AccessLevel `json:"accessLevel" yaml:"accessLevel"`
}

// AccessSettings holds visibility and the share list of a form.
type AccessSettings struct {
	Visibility Visibility   `json:"visibility" yaml:"visibility"`
	SharedWith []SharedUser `json:"sharedWith" yaml:"sharedWith"`
}

// DailyView counts public views of a form for one calendar day (UTC).
type DailyView struct {
	Date  string `json:"date" yaml:"date"` // 2006-01-02
	Count int    `json:"count" yaml:"count"`
}

// Form is a multi-page questionnaire owned by a user inside a project.
type Form struct {
	ID                  string         `json:"id" yaml:"id"`
	Title               string         `json:"title" yaml:"title"`
	Owner               string         `json:"owner" yaml:"owner"`
	ProjectID           string         `json:"projectId" yaml:"projectId"`
	Status              FormStatus     `json:"status" yaml:"status"`
	Pages               []Page         `json:"pages" yaml:"pages"`
	PublishedLink       string         `json:"publishedLink,omitempty" yaml:"publishedLink,omitempty"`
	AccessSettings      AccessSettings `json:"accessSettings" yaml:"accessSettings"`
	TotalViews          int            `json:"totalViews" yaml:"totalViews"`
	TotalResponses      int            `json:"totalResponses" yaml:"totalResponses"`
	AverageResponseTime float64        `json:"averageResponseTime" yaml:"averageResponseTime"`
	DailyViews          []DailyView    `json:"dailyViews" yaml:"dailyViews"`
	CreatedAt           time.Time      `json:"createdAt" yaml:"createdAt"`
	UpdatedAt           time.Time      `json:"updatedAt" yaml:"updatedAt"`
}

// MaxFormTitle is the longest accepted form title.
const MaxFormTitle = 200

// IsPublished reports whether the form accepts responses.
func (f *Form) IsPublished() bool { return f.Status == FormStatusPublished }

// SharedAccess returns the access level granted to userID, if any.
func (f *Form) SharedAccess(userID string) (AccessLevel, bool) {
	for _, s := range f.AccessSettings.SharedWith {
		if s.UserID == userID {
			return s.AccessLevel, true
		}
	}
	return "", false
}

// CanAccess reports whether userID may use the form with the required level.
// Owners have every level. Public forms grant view to everyone.
func (f *Form) CanAccess(userID string, required AccessLevel) bool {
	if userID != "" && f.Owner == userID {
		return true
	}
	if required == AccessView && f.AccessSettings.Visibility == VisibilityPublic {
		return true
	}
	if userID == "" {
		return false
	}
	level, ok := f.SharedAccess(userID)
	return ok && level.Rank() >= required.Rank()
}

// Page returns the page with the given id.
func (f *Form) Page(id string) (*Page, bool) {
	for i := range f.Pages {
		if f.Pages[i].ID == id {
			return &f.Pages[i], true
		}
	}
	return nil, false
}

// Question returns the question with the given id from any page.
func (f *Form) Question(id string) (*Question, bool) {
	for i := range f.Pages {
		if q, ok := f.Pages[i].Question(id); ok {
			return q, true
		}
	}
	return nil, false
}

// Clone returns a deep copy of the form.
func (f *Form) Clone() *Form {
	if f == nil {
		return nil
	}
	c := *f
	c.Pages = ClonePages(f.Pages)
	c.AccessSettings.SharedWith = append([]SharedUser(nil), f.AccessSettings.SharedWith...)
	c.DailyViews = append([]DailyView(nil), f.DailyViews...)
	return &c
}

// ResetAnalytics clears the counters derived from collected responses.
// View counters are kept.
func (f *Form) ResetAnalytics() {
	f.TotalResponses = 0
	f.AverageResponseTime = 0
}

// NewForm returns a draft, publicly visible form with a single default page.
func NewForm(title, owner, projectID string, now time.Time) *Form {
	first := NewPage(DefaultFirstPageName)
	return &Form{
		ID:        NewID(),
		Title:     title,
		Owner:     owner,
		ProjectID: projectID,
		Status:    FormStatusDraft,
		Pages:     []Page{first},
		AccessSettings: AccessSettings{
			Visibility: VisibilityPublic,
			SharedWith: []SharedUser{},
		},
		DailyViews: []DailyView{},
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}
