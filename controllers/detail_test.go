package controllers

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scholar-catalog/client"
	"scholar-catalog/models"
)

func TestDetailLoad(t *testing.T) {
	detail := NewDetail(newFakeAPI(), nil)

	require.NoError(t, detail.Load(context.Background(), "5"))

	state := detail.State()
	require.NotNil(t, state.Article)
	assert.Equal(t, "5", state.Article.ID)
	assert.Len(t, state.Article.Citations, 2)
	assert.Empty(t, state.Error)
	assert.False(t, state.Loading)
}

func TestDetailLoadNotFound(t *testing.T) {
	detail := NewDetail(newFakeAPI(), nil)

	err := detail.Load(context.Background(), "missing")
	require.Error(t, err)

	state := detail.State()
	assert.Nil(t, state.Article)
	assert.Equal(t, MsgNotFound, state.Error)
}

func TestDetailLoadNotFoundFromAPI(t *testing.T) {
	api := newFakeAPI()
	api.getErr = &client.APIError{StatusCode: http.StatusNotFound, Message: "article not found"}
	detail := NewDetail(api, nil)

	require.Error(t, detail.Load(context.Background(), "1"))
	assert.Equal(t, MsgNotFound, detail.State().Error)
}

func TestDetailLoadFailure(t *testing.T) {
	api := newFakeAPI()
	detail := NewDetail(api, nil)
	require.NoError(t, detail.Load(context.Background(), "1"))

	api.getErr = errors.New("timeout")
	require.Error(t, detail.Load(context.Background(), "2"))

	state := detail.State()
	assert.Nil(t, state.Article)
	assert.Equal(t, MsgLoadFailed, state.Error)
}

func TestDetailClear(t *testing.T) {
	detail := NewDetail(newFakeAPI(), nil)
	require.Error(t, detail.Load(context.Background(), "missing"))

	detail.Clear()

	state := detail.State()
	assert.Nil(t, state.Article)
	assert.Empty(t, state.Error)
}

func TestDetailClearDiscardsInFlightLoad(t *testing.T) {
	api := newFakeAPI()
	started := make(chan struct{})
	release := make(chan struct{})
	api.getHook = func(id string) (*models.Article, error) {
		close(started)
		<-release
		return &models.Article{ID: id, Title: "late"}, nil
	}
	detail := NewDetail(api, nil)

	done := make(chan error, 1)
	go func() {
		done <- detail.Load(context.Background(), "9")
	}()
	<-started
	assert.True(t, detail.State().Loading)

	detail.Clear()
	assert.False(t, detail.State().Loading)

	close(release)
	require.NoError(t, <-done)
	assert.Nil(t, detail.State().Article)
}

func TestDetailAddCitation(t *testing.T) {
	api := newFakeAPI()
	detail := NewDetail(api, nil)
	require.NoError(t, detail.Load(context.Background(), "4"))

	article, err := detail.AddCitation(context.Background(), "4", models.CitationInput{
		Title:   "Follow-up",
		Authors: []string{"Grace Hopper"},
		Year:    1952,
	})
	require.NoError(t, err)
	assert.Len(t, article.Citations, 3)

	state := detail.State()
	require.NotNil(t, state.Article)
	require.Len(t, state.Article.Citations, 3)
	assert.Equal(t, "Follow-up", state.Article.Citations[2].Title)
}

func TestDetailAddCitationFailureKeepsArticle(t *testing.T) {
	api := newFakeAPI()
	detail := NewDetail(api, nil)
	require.NoError(t, detail.Load(context.Background(), "4"))

	api.citeErr = errors.New("server error")
	_, err := detail.AddCitation(context.Background(), "4", models.CitationInput{Title: "x"})
	require.Error(t, err)

	state := detail.State()
	require.NotNil(t, state.Article)
	assert.Equal(t, "4", state.Article.ID)
	assert.Len(t, state.Article.Citations, 2)
	assert.Equal(t, MsgAddCitationFailed, state.Error)
}

func TestDetailReplaceIgnoresOtherArticles(t *testing.T) {
	detail := NewDetail(newFakeAPI(), nil)
	require.NoError(t, detail.Load(context.Background(), "4"))

	detail.Replace(&models.Article{ID: "5", Title: "other"})
	assert.NotEqual(t, "other", detail.State().Article.Title)

	detail.Replace(&models.Article{ID: "4", Title: "renamed"})
	assert.Equal(t, "renamed", detail.State().Article.Title)
}
