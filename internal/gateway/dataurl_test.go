package gateway

import (
	"bytes"
	"errors"
	"testing"
)

func TestEncodeDataURL(t *testing.T) {
	got := EncodeDataURL([]byte{0x89, 0x50, 0x4e, 0x47}, "image/png")
	want := "data:image/png;base64,iVBORw=="
	if got != want {
		t.Errorf("EncodeDataURL() = %q, want %q", got, want)
	}
}

func TestDecodeDataURL(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		payload := []byte("binary image bytes")
		ref := EncodeDataURL(payload, "image/png")

		data, mime, err := DecodeDataURL(ref)
		if err != nil {
			t.Fatalf("DecodeDataURL() error = %v", err)
		}
		if !bytes.Equal(data, payload) {
			t.Errorf("payload = %q, want %q", data, payload)
		}
		if mime != "image/png" {
			t.Errorf("mime = %q, want image/png", mime)
		}
	})

	t.Run("plain resource locator", func(t *testing.T) {
		_, _, err := DecodeDataURL("https://example.com/image.png")
		if !errors.Is(err, ErrNotDataURL) {
			t.Errorf("error = %v, want ErrNotDataURL", err)
		}
	})

	t.Run("missing payload boundary", func(t *testing.T) {
		_, _, err := DecodeDataURL("data:image/png;base64")
		if !errors.Is(err, ErrNotDataURL) {
			t.Errorf("error = %v, want ErrNotDataURL", err)
		}
	})

	t.Run("non-base64 encoding", func(t *testing.T) {
		_, _, err := DecodeDataURL("data:text/plain,hello")
		if !errors.Is(err, ErrNotDataURL) {
			t.Errorf("error = %v, want ErrNotDataURL", err)
		}
	})

	t.Run("corrupt payload", func(t *testing.T) {
		_, _, err := DecodeDataURL("data:image/png;base64,!!!not-base64!!!")
		if err == nil {
			t.Error("DecodeDataURL() error = nil, want decode failure")
		}
	})
}

func TestPartConstructors(t *testing.T) {
	text := TextPart("hello")
	if !text.IsText() || text.IsInlineData() {
		t.Errorf("TextPart misclassified: %+v", text)
	}

	inline := InlineDataPart([]byte{1, 2}, "audio/mpeg")
	if inline.IsText() || !inline.IsInlineData() {
		t.Errorf("InlineDataPart misclassified: %+v", inline)
	}
	if inline.MIMEType != "audio/mpeg" {
		t.Errorf("MIMEType = %q, want audio/mpeg", inline.MIMEType)
	}
}
