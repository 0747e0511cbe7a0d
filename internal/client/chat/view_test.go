package chat

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"joytrade/internal/client/models"
	"joytrade/internal/logging"
)

type stubAPI struct {
	conversations []models.Conversation
	convErr       error
	messages      map[int][]models.Message
	msgErr        error
	products      map[int]models.Product
	productErr    error
	sendErr       error

	sent   []string
	sendTo []string
	calls  int
}

func (s *stubAPI) Conversations(context.Context) ([]models.Conversation, error) {
	s.calls++
	return s.conversations, s.convErr
}

func (s *stubAPI) Messages(_ context.Context, productID int) ([]models.Message, error) {
	s.calls++
	if s.msgErr != nil {
		return nil, s.msgErr
	}
	return s.messages[productID], nil
}

func (s *stubAPI) SendMessage(_ context.Context, productID int, receiver, text string) error {
	s.calls++
	if s.sendErr != nil {
		return s.sendErr
	}
	s.sent = append(s.sent, text)
	s.sendTo = append(s.sendTo, receiver)
	return nil
}

func (s *stubAPI) Product(_ context.Context, id int) (models.Product, error) {
	s.calls++
	if s.productErr != nil {
		return models.Product{}, s.productErr
	}
	return s.products[id], nil
}

func TestLoadPrependsDirectTarget(t *testing.T) {
	api := &stubAPI{
		conversations: []models.Conversation{
			{ProductID: 2, ProductName: "Desk", OtherUser: "carol"},
		},
		products: map[int]models.Product{
			7: {ID: 7, Name: "Bike", Image: "🚲", Price: 45},
		},
	}
	v := NewView(api, logging.Nop{}, models.User{Username: "alice"},
		&DirectTarget{ProductID: 7, Receiver: "bob"})

	v.Load(context.Background())

	require.NoError(t, v.LoadErr)
	require.Len(t, v.Conversations, 2)
	want := models.Conversation{
		ProductID: 7, ProductName: "Bike", OtherUser: "bob",
		ProductImage: "🚲", ProductPrice: 45,
	}
	if diff := cmp.Diff(want, v.Conversations[0]); diff != "" {
		t.Errorf("synthesized entry mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 2, v.Conversations[1].ProductID, "server order preserved behind the entry")
}

func TestLoadKeepsExistingConversation(t *testing.T) {
	existing := []models.Conversation{
		{ProductID: 7, ProductName: "Bike", OtherUser: "bob"},
		{ProductID: 2, ProductName: "Desk", OtherUser: "carol"},
	}
	api := &stubAPI{conversations: existing}
	v := NewView(api, logging.Nop{}, models.User{Username: "alice"},
		&DirectTarget{ProductID: 7, Receiver: "bob"})

	v.Load(context.Background())

	require.NoError(t, v.LoadErr)
	if diff := cmp.Diff(existing, v.Conversations); diff != "" {
		t.Errorf("list changed (-want +got):\n%s", diff)
	}
	assert.Equal(t, 1, api.calls, "no product fetch when the target already exists")
}

func TestLoadFailureKeepsPriorState(t *testing.T) {
	api := &stubAPI{conversations: []models.Conversation{{ProductID: 2, OtherUser: "carol"}}}
	v := NewView(api, logging.Nop{}, models.User{Username: "alice"}, nil)
	v.Load(context.Background())
	require.Len(t, v.Conversations, 1)

	api.convErr = errors.New("boom")
	v.Load(context.Background())

	assert.Error(t, v.LoadErr)
	assert.Len(t, v.Conversations, 1, "prior list survives a failed reload")
}

func TestLoadDirectProductFetchFailure(t *testing.T) {
	api := &stubAPI{productErr: errors.New("boom")}
	v := NewView(api, logging.Nop{}, models.User{Username: "alice"},
		&DirectTarget{ProductID: 7, Receiver: "bob"})

	v.Load(context.Background())

	assert.Error(t, v.LoadErr)
	assert.Empty(t, v.Conversations)
}

func TestSelectResolvesMetadata(t *testing.T) {
	api := &stubAPI{
		conversations: []models.Conversation{
			{ProductID: 7, ProductName: "Bike", OtherUser: "bob", ProductImage: "🚲", ProductPrice: 45},
		},
		messages: map[int][]models.Message{
			7: {{ID: 1, ProductID: 7, Sender: "bob", Text: "still available?"}},
		},
	}
	v := NewView(api, logging.Nop{}, models.User{Username: "alice"}, nil)
	v.Load(context.Background())

	v.Select(context.Background(), 7)

	require.NoError(t, v.LoadErr)
	assert.Equal(t, 7, v.SelectedID)
	assert.Equal(t, "bob", v.Receiver)
	require.NotNil(t, v.Summary)
	assert.Equal(t, "Bike", v.Summary.Name)
	require.Len(t, v.Messages, 1)
}

func TestSelectFallsBackToProductFetch(t *testing.T) {
	api := &stubAPI{
		messages: map[int][]models.Message{},
		products: map[int]models.Product{9: {ID: 9, Name: "Lamp", Price: 10}},
	}
	v := NewView(api, logging.Nop{}, models.User{Username: "alice"},
		&DirectTarget{ProductID: 9, Receiver: "dave"})

	v.Select(context.Background(), 9)

	require.NoError(t, v.LoadErr)
	assert.Equal(t, "dave", v.Receiver)
	require.NotNil(t, v.Summary)
	assert.Equal(t, "Lamp", v.Summary.Name)
}

func TestSendRejectsWhitespace(t *testing.T) {
	api := &stubAPI{}
	v := NewView(api, logging.Nop{}, models.User{Username: "alice"}, nil)
	v.SelectedID = 7
	v.Receiver = "bob"

	err := v.Send(context.Background(), "   \t ")

	assert.ErrorIs(t, err, ErrEmptyMessage)
	assert.Zero(t, api.calls, "no API call for a blank message")
}

func TestSendRequiresSelection(t *testing.T) {
	api := &stubAPI{}
	v := NewView(api, logging.Nop{}, models.User{Username: "alice"}, nil)

	err := v.Send(context.Background(), "hello")

	assert.ErrorIs(t, err, ErrNoRecipient)
	assert.Zero(t, api.calls)
}

func TestSendRefetchesMessages(t *testing.T) {
	api := &stubAPI{
		messages: map[int][]models.Message{
			7: {
				{ID: 1, Text: "still available?", Sender: "bob"},
				{ID: 2, Text: "yes", Sender: "alice"},
			},
		},
	}
	v := NewView(api, logging.Nop{}, models.User{Username: "alice"}, nil)
	v.SelectedID = 7
	v.Receiver = "bob"

	require.NoError(t, v.Send(context.Background(), "  yes  "))

	assert.Equal(t, []string{"yes"}, api.sent, "text is trimmed before sending")
	assert.Equal(t, []string{"bob"}, api.sendTo)
	assert.Len(t, v.Messages, 2, "list replaced by the server's canonical copy")
}

func TestSendRefreshFailureIsSilent(t *testing.T) {
	api := &stubAPI{msgErr: errors.New("boom")}
	v := NewView(api, logging.Nop{}, models.User{Username: "alice"}, nil)
	v.SelectedID = 7
	v.Receiver = "bob"
	v.Messages = []models.Message{{ID: 1, Text: "hi"}}

	err := v.Send(context.Background(), "hello")

	require.NoError(t, err, "send succeeded, only the refresh degraded")
	assert.Error(t, v.LoadErr)
	assert.Len(t, v.Messages, 1, "prior messages survive a failed refresh")
}
