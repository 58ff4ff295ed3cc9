package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/backfireIBGM/RocketInfo/service"
	"github.com/backfireIBGM/RocketInfo/testutil"
	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatClientFactory_MissingKey(t *testing.T) {
	stub := testutil.NewChatStub(t, http.StatusOK, "unused")
	factory := service.NewChatClientFactory(service.ChatConfig{BaseURL: stub.BaseURL()}, nil)

	client, err := factory.NewClient()

	assert.Nil(t, client)
	var cfgErr *service.ConfigurationError
	require.True(t, errors.As(err, &cfgErr))
	assert.ErrorIs(t, err, service.ErrMissingAPIKey)
	assert.Equal(t, "API key not found in environment variables", err.Error())
	assert.Empty(t, stub.Requests())
}

func TestChatClient_Complete(t *testing.T) {
	stub := testutil.NewChatStub(t, http.StatusOK, "The next launch is soon.")
	factory := service.NewChatClientFactory(service.ChatConfig{APIKey: "sk-test", BaseURL: stub.BaseURL()}, nil)

	client, err := factory.NewClient()
	require.NoError(t, err)

	got, err := client.Complete(context.Background(), "hello prompt")
	require.NoError(t, err)
	assert.Equal(t, "The next launch is soon.", got)

	reqs := stub.Requests()
	require.Len(t, reqs, 1)
	assert.Equal(t, openai.GPT4o, reqs[0].Model)
	require.Len(t, reqs[0].Messages, 1)
	assert.Equal(t, openai.ChatMessageRoleUser, reqs[0].Messages[0].Role)
	assert.Equal(t, "hello prompt", reqs[0].Messages[0].Content)
}

func TestChatClient_UsesConfiguredModel(t *testing.T) {
	stub := testutil.NewChatStub(t, http.StatusOK, "ok")
	factory := service.NewChatClientFactory(service.ChatConfig{APIKey: "sk-test", Model: "gpt-4o-mini", BaseURL: stub.BaseURL()}, nil)

	client, err := factory.NewClient()
	require.NoError(t, err)
	_, err = client.Complete(context.Background(), "p")
	require.NoError(t, err)

	assert.Equal(t, "gpt-4o-mini", stub.Requests()[0].Model)
}

func TestChatClient_RemoteFailure(t *testing.T) {
	stub := testutil.NewChatStub(t, http.StatusUnauthorized, "")
	factory := service.NewChatClientFactory(service.ChatConfig{APIKey: "sk-bad", BaseURL: stub.BaseURL()}, nil)

	client, err := factory.NewClient()
	require.NoError(t, err, "key correctness is not checked locally")

	_, err = client.Complete(context.Background(), "p")

	var transportErr *service.TransportError
	require.True(t, errors.As(err, &transportErr))
	assert.Equal(t, "chat completion", transportErr.Op)
	assert.Len(t, stub.Requests(), 1)
}

func TestChatClient_NoChoices(t *testing.T) {
	stub := testutil.NewChatStub(t, http.StatusOK, "")
	factory := service.NewChatClientFactory(service.ChatConfig{APIKey: "sk-test", BaseURL: stub.BaseURL()}, nil)

	client, err := factory.NewClient()
	require.NoError(t, err)
	_, err = client.Complete(context.Background(), "p")

	var transportErr *service.TransportError
	assert.True(t, errors.As(err, &transportErr))
}
