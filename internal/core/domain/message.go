package domain

import (
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

// MaxMessageLength is counted in runes.
const MaxMessageLength = 280

// --- VALUE OBJECT ---

// MessageText is a validated message body. The zero value is never handed out.
type MessageText struct {
	value string
}

// NewMessageText checks the length first, so 281 spaces is too long rather than empty.
func NewMessageText(text string) (MessageText, error) {
	if utf8.RuneCountInString(text) > MaxMessageLength {
		return MessageText{}, ErrMessageTooLong
	}
	if len(strings.TrimFunc(text, isBlank)) == 0 {
		return MessageText{}, ErrMessageEmpty
	}
	return MessageText{value: text}, nil
}

// isBlank matches Unicode white space and the byte order mark.
func isBlank(r rune) bool {
	return unicode.IsSpace(r) || r == '\uFEFF'
}

func (t MessageText) Value() string {
	return t.value
}

// --- ENTITY ---

// MessageData is the plain snapshot handed to adapters for serialization.
type MessageData struct {
	ID          string
	Author      string
	Text        string
	PublishedAt time.Time
}

// Message only changes through EditText. ID, author and publish time are fixed.
type Message struct {
	id          string
	author      string
	text        MessageText
	publishedAt time.Time
}

// NewMessage is the only way to build a Message, stored or fresh.
func NewMessage(data MessageData) (*Message, error) {
	text, err := NewMessageText(data.Text)
	if err != nil {
		return nil, err
	}
	return &Message{
		id:          data.ID,
		author:      data.Author,
		text:        text,
		publishedAt: data.PublishedAt,
	}, nil
}

func (m *Message) ID() string             { return m.id }
func (m *Message) Author() string         { return m.author }
func (m *Message) Text() string           { return m.text.Value() }
func (m *Message) PublishedAt() time.Time { return m.publishedAt }

// EditText replaces the text. On error the previous text is kept.
func (m *Message) EditText(text string) error {
	newText, err := NewMessageText(text)
	if err != nil {
		return err
	}
	m.text = newText
	return nil
}

func (m *Message) Data() MessageData {
	return MessageData{
		ID:          m.id,
		Author:      m.author,
		Text:        m.text.Value(),
		PublishedAt: m.publishedAt,
	}
}
