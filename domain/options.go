package domain

// ListRepositoriesOptions filters a repository listing. Zero-value fields
// are omitted from the outbound query string entirely; the remote API
// treats an empty parameter differently from an absent one.
type ListRepositoriesOptions struct {
	Role    string `url:"role,omitempty"`
	Page    int    `url:"page,omitempty"`
	PageLen int    `url:"pagelen,omitempty"`
}

// ListPipelinesOptions filters a pipeline listing.
type ListPipelinesOptions struct {
	Sort    string `url:"sort,omitempty"`
	Page    int    `url:"page,omitempty"`
	PageLen int    `url:"pagelen,omitempty"`
}

// ListPullRequestsOptions filters a pull request listing.
type ListPullRequestsOptions struct {
	State   string `url:"state,omitempty"`
	Sort    string `url:"sort,omitempty"`
	Page    int    `url:"page,omitempty"`
	PageLen int    `url:"pagelen,omitempty"`
}

// CreatePullRequestInput contains the data needed to open a pull request.
// Title, Source and Destination branch names are required; everything else
// is additive.
type CreatePullRequestInput struct {
	Title             string              `json:"title"`
	Description       string              `json:"description,omitempty"`
	Source            PullRequestEndpoint `json:"source"`
	Destination       PullRequestEndpoint `json:"destination"`
	CloseSourceBranch bool                `json:"close_source_branch,omitempty"`
	Reviewers         []Account           `json:"reviewers,omitempty"`
}

// UpdatePullRequestInput carries a partial update: every field is
// independently optional and absent fields leave the remote value untouched.
type UpdatePullRequestInput struct {
	Title             string    `json:"title,omitempty"`
	Description       string    `json:"description,omitempty"`
	Reviewers         []Account `json:"reviewers,omitempty"`
	CloseSourceBranch *bool     `json:"close_source_branch,omitempty"`
}

// MergePullRequestInput parameterizes a pull request merge.
type MergePullRequestInput struct {
	Message           string `json:"message,omitempty"`
	MergeStrategy     string `json:"merge_strategy,omitempty"`
	CloseSourceBranch bool   `json:"close_source_branch,omitempty"`
}
