package models

import "time"

// Solution is a published model/solution entry stored in the "solution"
// table. ID is generated by the database; UUID is the externally meaningful
// identifier and is unique through the idx_solution_uuid index.
type Solution struct {
	ID   *int64 `json:"id"`
	UUID string `json:"uuid"`

	Name    string `json:"name"`
	Version string `json:"version"`
	Summary string `json:"summary"`

	AuthorLogin string `json:"authorLogin"`
	AuthorName  string `json:"authorName"`
	Company     string `json:"company"`
	CoAuthors   string `json:"coAuthors"`

	Tag1     string `json:"tag1"`
	Tag2     string `json:"tag2"`
	Tag3     string `json:"tag3"`
	Subject1 string `json:"subject1"`
	Subject2 string `json:"subject2"`
	Subject3 string `json:"subject3"`

	Active       bool   `json:"active"`
	SolutionType string `json:"type"`
	ToolkitType  string `json:"toolkitType"`
	PictureURL   string `json:"pictureUrl"`

	CreatedDate  time.Time  `json:"createdDate"`
	ModifiedDate time.Time  `json:"modifiedDate"`
	LastDownload *time.Time `json:"lastDownload"`

	ViewCount     int64   `json:"viewCount"`
	DownloadCount int64   `json:"downloadCount"`
	CommentCount  int64   `json:"commentCount"`
	RatingCount   int64   `json:"ratingCount"`
	RatingAverage float64 `json:"ratingAverage"`
}

// TableName returns the name of the database table
// associated with the Solution model.
func (s Solution) TableName() string {
	return "solution"
}

// SolutionFilter narrows a solution listing.
type SolutionFilter struct {
	// AuthorLogin, when non-empty, restricts results to one author.
	AuthorLogin string
}

// CompositeSolutionUpdate is the partial update sent by the composite
// solution dialog. Only Name, Version and Summary are applied; UUID selects
// the target and AuthorLogin identifies who is editing.
type CompositeSolutionUpdate struct {
	UUID        string `json:"uuid"`
	Name        string `json:"name"`
	AuthorLogin string `json:"authorLogin"`
	Version     string `json:"version"`
	Summary     string `json:"summary"`
}
