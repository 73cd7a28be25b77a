package domain

import "time"

// Link is a single hyperlink in a Bitbucket resource.
type Link struct {
	Href string `json:"href"`
}

// Links holds the hyperlinks Bitbucket attaches to every entity.
type Links struct {
	Self Link `json:"self"`
	HTML Link `json:"html"`
}

// Account represents a Bitbucket user or team account.
type Account struct {
	UUID        string `json:"uuid,omitempty"`
	AccountID   string `json:"account_id,omitempty"`
	Nickname    string `json:"nickname,omitempty"`
	DisplayName string `json:"display_name,omitempty"`
}

// Branch is a named Git branch reference.
type Branch struct {
	Name string `json:"name"`
}

// Commit identifies a single commit by hash.
type Commit struct {
	Hash string `json:"hash,omitempty"`
}

// Repository is a read-only projection of a Bitbucket Cloud repository.
type Repository struct {
	UUID        string    `json:"uuid"`
	Name        string    `json:"name"`
	FullName    string    `json:"full_name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description,omitempty"`
	IsPrivate   bool      `json:"is_private"`
	MainBranch  *Branch   `json:"mainbranch,omitempty"`
	Owner       *Account  `json:"owner,omitempty"`
	CreatedOn   time.Time `json:"created_on"`
	UpdatedOn   time.Time `json:"updated_on"`
	Links       *Links    `json:"links,omitempty"`
}

// PipelineState describes where a pipeline (or step) is in its lifecycle.
type PipelineState struct {
	Name   string               `json:"name"`
	Type   string               `json:"type,omitempty"`
	Result *PipelineStateResult `json:"result,omitempty"`
}

// PipelineStateResult is the terminal outcome of a completed pipeline.
type PipelineStateResult struct {
	Name string `json:"name"`
	Type string `json:"type,omitempty"`
}

// Pipeline is one execution of a CI build.
type Pipeline struct {
	UUID        string         `json:"uuid"`
	BuildNumber int            `json:"build_number"`
	State       *PipelineState `json:"state,omitempty"`
	Creator     *Account       `json:"creator,omitempty"`
	CreatedOn   time.Time      `json:"created_on"`
	CompletedOn *time.Time     `json:"completed_on,omitempty"`
}

// PipelineStep is one stage within a pipeline execution.
type PipelineStep struct {
	UUID        string         `json:"uuid"`
	Name        string         `json:"name"`
	State       *PipelineState `json:"state,omitempty"`
	StartedOn   *time.Time     `json:"started_on,omitempty"`
	CompletedOn *time.Time     `json:"completed_on,omitempty"`
}

// PullRequestEndpoint is one side of a pull request (source or destination).
type PullRequestEndpoint struct {
	Branch     Branch      `json:"branch"`
	Commit     *Commit     `json:"commit,omitempty"`
	Repository *Repository `json:"repository,omitempty"`
}

// PullRequest is a read-only projection of a Bitbucket Cloud pull request.
type PullRequest struct {
	ID                int                 `json:"id"`
	Title             string              `json:"title"`
	Description       string              `json:"description,omitempty"`
	State             string              `json:"state"`
	Author            *Account            `json:"author,omitempty"`
	Source            PullRequestEndpoint `json:"source"`
	Destination       PullRequestEndpoint `json:"destination"`
	Reviewers         []Account           `json:"reviewers,omitempty"`
	CloseSourceBranch bool                `json:"close_source_branch"`
	Reason            string              `json:"reason,omitempty"`
	CreatedOn         time.Time           `json:"created_on"`
	UpdatedOn         time.Time           `json:"updated_on"`
	Links             *Links              `json:"links,omitempty"`
}

// Page is one page of a Bitbucket paginated collection. Next is only set
// when more pages exist; Previous only past the first page.
type Page[T any] struct {
	Values   []T    `json:"values"`
	Pagelen  int    `json:"pagelen"`
	Size     int    `json:"size,omitempty"`
	Page     int    `json:"page,omitempty"`
	Next     string `json:"next,omitempty"`
	Previous string `json:"previous,omitempty"`
}

// Pull request states accepted by the remote API.
const (
	PullRequestStateOpen       = "OPEN"
	PullRequestStateMerged     = "MERGED"
	PullRequestStateDeclined   = "DECLINED"
	PullRequestStateSuperseded = "SUPERSEDED"
)

// PullRequestStates lists every valid pull request state filter.
var PullRequestStates = []string{
	PullRequestStateOpen,
	PullRequestStateMerged,
	PullRequestStateDeclined,
	PullRequestStateSuperseded,
}

// Merge strategies accepted by the remote API.
const (
	MergeStrategyMergeCommit = "merge_commit"
	MergeStrategySquash      = "squash"
	MergeStrategyFastForward = "fast_forward"
)

// MergeStrategies lists every valid merge strategy.
var MergeStrategies = []string{
	MergeStrategyMergeCommit,
	MergeStrategySquash,
	MergeStrategyFastForward,
}
