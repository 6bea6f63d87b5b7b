package github

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/go-github/v57/github"
	"github.com/johanforsgren/gitcollection/internal/domain"
	"github.com/johanforsgren/gitcollection/internal/logger"
	"github.com/johanforsgren/gitcollection/internal/provider/common"
)

var ErrMalformedResponse = errors.New("malformed repository response")

var _ domain.RepositoryLookup = (*Provider)(nil)

type Provider struct {
	client *Client
}

func NewProvider(token, baseURL string) (*Provider, error) {
	client, err := NewClient(token, baseURL)
	if err != nil {
		return nil, err
	}

	return &Provider{client: client}, nil
}

func (p *Provider) LookupRepository(ctx context.Context, identifier string) (*domain.Repository, error) {
	logger.Log("GitHub: Looking up repository %q", identifier)
	owner, name, err := common.ParseRepositoryIdentifier(identifier)
	if err != nil {
		logger.LogError("GITHUB_LOOKUP", identifier, err)
		return nil, err
	}

	full := common.FormatRepositoryIdentifier(owner, name)

	ghRepo, err := p.client.GetRepository(ctx, owner, name)
	if err != nil {
		logger.LogError("GITHUB_LOOKUP", full, err)

		var ghErr *github.ErrorResponse
		if errors.As(err, &ghErr) && ghErr.Response != nil && ghErr.Response.StatusCode == http.StatusNotFound {
			return nil, fmt.Errorf("%w: %s", common.ErrRepositoryNotFound, full)
		}
		return nil, fmt.Errorf("%s: %w", common.ExtractErrorMessage(err), err)
	}

	if ghRepo.GetFullName() == "" {
		logger.LogError("GITHUB_LOOKUP", full, ErrMalformedResponse)
		return nil, fmt.Errorf("%w: %s", ErrMalformedResponse, full)
	}

	repo := convertRepository(ghRepo)
	logger.Log("GitHub: Found repository %s", repo.FullName)
	return &repo, nil
}

func convertRepository(ghRepo *github.Repository) domain.Repository {
	repo := domain.Repository{
		FullName:    ghRepo.GetFullName(),
		Description: ghRepo.GetDescription(),
	}

	if ghRepo.Owner != nil {
		repo.Owner = domain.Owner{
			Login:     ghRepo.Owner.GetLogin(),
			AvatarURL: ghRepo.Owner.GetAvatarURL(),
		}
	}

	return repo
}
