package main

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeSender struct {
	err   error
	sent  int
	to    string
	text  string
	title string
}

func (f *fakeSender) Send(_ context.Context, to, subject, text string) error {
	f.sent++
	f.to = to
	f.title = subject
	f.text = text
	return f.err
}

const goodJob = `{"to":"amara@example.com","subject":"Re: your feedback","text":"We will re-route the truck"}`

func TestProcessDelivers(t *testing.T) {
	sender := &fakeSender{}

	got := process(context.Background(), sender, []byte(goodJob), false)

	assert.Equal(t, outcomeAck, got)
	assert.Equal(t, 1, sender.sent)
	assert.Equal(t, "amara@example.com", sender.to)
	assert.Equal(t, "Re: your feedback", sender.title)
}

func TestProcessDropsBadPayloads(t *testing.T) {
	sender := &fakeSender{}

	assert.Equal(t, outcomeDrop, process(context.Background(), sender, []byte("not json"), false))
	assert.Equal(t, outcomeDrop, process(context.Background(), sender, []byte(`{"text":"no recipient"}`), false))
	assert.Zero(t, sender.sent, "unusable jobs must never reach the sender")
}

func TestProcessRetriesFailedSendOnce(t *testing.T) {
	sender := &fakeSender{err: errors.New("mailgun down")}

	// First failure goes back on the queue.
	assert.Equal(t, outcomeRequeue, process(context.Background(), sender, []byte(goodJob), false))

	// A redelivered message that fails again is dropped, not requeued forever.
	assert.Equal(t, outcomeDrop, process(context.Background(), sender, []byte(goodJob), true))
}
