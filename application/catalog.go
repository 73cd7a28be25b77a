package application

import (
	"context"

	"github.com/rios0rios0/bitbridge/domain"
)

// Descriptor binds one callable method name to its input contract and the
// client call implementing it. Descriptors are immutable after catalog
// construction.
type Descriptor struct {
	Name        string
	Description string
	Schema      Schema
	Invoke      func(ctx context.Context, params map[string]any) (any, error)
}

// Catalog is the fixed set of supported operations, keyed by method name.
// Names are unique by construction of the map.
type Catalog map[string]Descriptor

// Valid values for the repository role filter.
var repositoryRoles = []string{"owner", "admin", "contributor", "member"}

// NewCatalog builds one descriptor per supported Bitbucket operation, each
// bound to the given client. The method names form the capability set the
// server shell advertises.
func NewCatalog(client domain.Client) Catalog {
	catalog := Catalog{}
	register := func(d Descriptor) {
		catalog[d.Name] = d
	}

	register(Descriptor{
		Name:        "bitbucket/getRepositories",
		Description: "List repositories, optionally scoped to a workspace.",
		Schema: Schema{
			"workspace": {Type: FieldString},
			"role":      {Type: FieldString, Enum: repositoryRoles},
			"page":      {Type: FieldInt},
			"pageSize":  {Type: FieldInt},
		},
		Invoke: func(ctx context.Context, params map[string]any) (any, error) {
			return client.ListRepositories(ctx, stringParam(params, "workspace"),
				domain.ListRepositoriesOptions{
					Role:    stringParam(params, "role"),
					Page:    intParam(params, "page"),
					PageLen: intParam(params, "pageSize"),
				})
		},
	})

	register(Descriptor{
		Name:        "bitbucket/getRepository",
		Description: "Get a single repository by workspace and slug.",
		Schema: Schema{
			"workspace": {Type: FieldString, Required: true},
			"repoSlug":  {Type: FieldString, Required: true},
		},
		Invoke: func(ctx context.Context, params map[string]any) (any, error) {
			return client.GetRepository(ctx,
				stringParam(params, "workspace"), stringParam(params, "repoSlug"))
		},
	})

	register(Descriptor{
		Name:        "bitbucket/getPipelines",
		Description: "List CI pipelines for a repository.",
		Schema: Schema{
			"workspace": {Type: FieldString, Required: true},
			"repoSlug":  {Type: FieldString, Required: true},
			"sort":      {Type: FieldString},
			"page":      {Type: FieldInt},
			"pageSize":  {Type: FieldInt},
		},
		Invoke: func(ctx context.Context, params map[string]any) (any, error) {
			return client.ListPipelines(ctx,
				stringParam(params, "workspace"), stringParam(params, "repoSlug"),
				domain.ListPipelinesOptions{
					Sort:    stringParam(params, "sort"),
					Page:    intParam(params, "page"),
					PageLen: intParam(params, "pageSize"),
				})
		},
	})

	register(Descriptor{
		Name:        "bitbucket/getPipeline",
		Description: "Get a single pipeline by UUID.",
		Schema: Schema{
			"workspace":    {Type: FieldString, Required: true},
			"repoSlug":     {Type: FieldString, Required: true},
			"pipelineUuid": {Type: FieldString, Required: true},
		},
		Invoke: func(ctx context.Context, params map[string]any) (any, error) {
			return client.GetPipeline(ctx,
				stringParam(params, "workspace"), stringParam(params, "repoSlug"),
				stringParam(params, "pipelineUuid"))
		},
	})

	register(Descriptor{
		Name:        "bitbucket/getPipelineSteps",
		Description: "List the steps of a pipeline execution.",
		Schema: Schema{
			"workspace":    {Type: FieldString, Required: true},
			"repoSlug":     {Type: FieldString, Required: true},
			"pipelineUuid": {Type: FieldString, Required: true},
		},
		Invoke: func(ctx context.Context, params map[string]any) (any, error) {
			return client.ListPipelineSteps(ctx,
				stringParam(params, "workspace"), stringParam(params, "repoSlug"),
				stringParam(params, "pipelineUuid"))
		},
	})

	register(Descriptor{
		Name:        "bitbucket/getPullRequests",
		Description: "List pull requests for a repository.",
		Schema: Schema{
			"workspace": {Type: FieldString, Required: true},
			"repoSlug":  {Type: FieldString, Required: true},
			"state":     {Type: FieldString, Enum: domain.PullRequestStates},
			"sort":      {Type: FieldString},
			"page":      {Type: FieldInt},
			"pageSize":  {Type: FieldInt},
		},
		Invoke: func(ctx context.Context, params map[string]any) (any, error) {
			return client.ListPullRequests(ctx,
				stringParam(params, "workspace"), stringParam(params, "repoSlug"),
				domain.ListPullRequestsOptions{
					State:   stringParam(params, "state"),
					Sort:    stringParam(params, "sort"),
					Page:    intParam(params, "page"),
					PageLen: intParam(params, "pageSize"),
				})
		},
	})

	register(Descriptor{
		Name:        "bitbucket/getPullRequest",
		Description: "Get a single pull request by id.",
		Schema: Schema{
			"workspace": {Type: FieldString, Required: true},
			"repoSlug":  {Type: FieldString, Required: true},
			"id":        {Type: FieldInt, Required: true},
		},
		Invoke: func(ctx context.Context, params map[string]any) (any, error) {
			return client.GetPullRequest(ctx,
				stringParam(params, "workspace"), stringParam(params, "repoSlug"),
				intParam(params, "id"))
		},
	})

	register(Descriptor{
		Name:        "bitbucket/createPullRequest",
		Description: "Open a new pull request.",
		Schema: Schema{
			"workspace":         {Type: FieldString, Required: true},
			"repoSlug":          {Type: FieldString, Required: true},
			"title":             {Type: FieldString, Required: true},
			"sourceBranch":      {Type: FieldString, Required: true},
			"destinationBranch": {Type: FieldString, Required: true},
			"description":       {Type: FieldString},
			"closeSourceBranch": {Type: FieldBool},
			"reviewers":         {Type: FieldStringList},
		},
		Invoke: func(ctx context.Context, params map[string]any) (any, error) {
			return client.CreatePullRequest(ctx,
				stringParam(params, "workspace"), stringParam(params, "repoSlug"),
				domain.CreatePullRequestInput{
					Title:       stringParam(params, "title"),
					Description: stringParam(params, "description"),
					Source: domain.PullRequestEndpoint{
						Branch: domain.Branch{Name: stringParam(params, "sourceBranch")},
					},
					Destination: domain.PullRequestEndpoint{
						Branch: domain.Branch{Name: stringParam(params, "destinationBranch")},
					},
					CloseSourceBranch: boolParam(params, "closeSourceBranch"),
					Reviewers:         reviewersParam(params),
				})
		},
	})

	register(Descriptor{
		Name:        "bitbucket/updatePullRequest",
		Description: "Apply a partial update to an existing pull request.",
		Schema: Schema{
			"workspace":         {Type: FieldString, Required: true},
			"repoSlug":          {Type: FieldString, Required: true},
			"id":                {Type: FieldInt, Required: true},
			"title":             {Type: FieldString},
			"description":       {Type: FieldString},
			"reviewers":         {Type: FieldStringList},
			"closeSourceBranch": {Type: FieldBool},
		},
		Invoke: func(ctx context.Context, params map[string]any) (any, error) {
			input := domain.UpdatePullRequestInput{
				Title:       stringParam(params, "title"),
				Description: stringParam(params, "description"),
				Reviewers:   reviewersParam(params),
			}
			if _, present := params["closeSourceBranch"]; present {
				flag := boolParam(params, "closeSourceBranch")
				input.CloseSourceBranch = &flag
			}
			return client.UpdatePullRequest(ctx,
				stringParam(params, "workspace"), stringParam(params, "repoSlug"),
				intParam(params, "id"), input)
		},
	})

	register(Descriptor{
		Name:        "bitbucket/mergePullRequest",
		Description: "Merge an open pull request.",
		Schema: Schema{
			"workspace":         {Type: FieldString, Required: true},
			"repoSlug":          {Type: FieldString, Required: true},
			"id":                {Type: FieldInt, Required: true},
			"mergeStrategy":     {Type: FieldString, Enum: domain.MergeStrategies},
			"message":           {Type: FieldString},
			"closeSourceBranch": {Type: FieldBool},
		},
		Invoke: func(ctx context.Context, params map[string]any) (any, error) {
			return client.MergePullRequest(ctx,
				stringParam(params, "workspace"), stringParam(params, "repoSlug"),
				intParam(params, "id"),
				domain.MergePullRequestInput{
					MergeStrategy:     stringParam(params, "mergeStrategy"),
					Message:           stringParam(params, "message"),
					CloseSourceBranch: boolParam(params, "closeSourceBranch"),
				})
		},
	})

	register(Descriptor{
		Name:        "bitbucket/declinePullRequest",
		Description: "Decline an open pull request.",
		Schema: Schema{
			"workspace": {Type: FieldString, Required: true},
			"repoSlug":  {Type: FieldString, Required: true},
			"id":        {Type: FieldInt, Required: true},
		},
		Invoke: func(ctx context.Context, params map[string]any) (any, error) {
			return client.DeclinePullRequest(ctx,
				stringParam(params, "workspace"), stringParam(params, "repoSlug"),
				intParam(params, "id"))
		},
	})

	return catalog
}

// The helpers below run only on payloads that already passed schema
// validation, so the type assertions are safe to fail soft.

func stringParam(params map[string]any, key string) string {
	value, _ := params[key].(string)
	return value
}

func intParam(params map[string]any, key string) int {
	switch number := params[key].(type) {
	case int:
		return number
	case float64:
		return int(number)
	default:
		return 0
	}
}

func boolParam(params map[string]any, key string) bool {
	value, _ := params[key].(bool)
	return value
}

// reviewersParam maps the "reviewers" field, a list of account UUIDs, into
// the account references the remote API expects.
func reviewersParam(params map[string]any) []domain.Account {
	var uuids []string
	switch list := params["reviewers"].(type) {
	case []string:
		uuids = list
	case []any:
		for _, item := range list {
			if str, ok := item.(string); ok {
				uuids = append(uuids, str)
			}
		}
	default:
		return nil
	}

	accounts := make([]domain.Account, 0, len(uuids))
	for _, uuid := range uuids {
		accounts = append(accounts, domain.Account{UUID: uuid})
	}
	return accounts
}
