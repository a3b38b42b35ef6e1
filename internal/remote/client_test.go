package remote

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/flashdeck/internal/deck"
	"github.com/abhisek/flashdeck/internal/study"
)

func fastRetry() RetryConfig {
	return RetryConfig{MaxAttempts: 3, InitialWait: time.Millisecond, MaxWait: 5 * time.Millisecond, Multiplier: 2}
}

func TestSubmitRating(t *testing.T) {
	t.Run("student payload", func(t *testing.T) {
		var got map[string]any
		var headers http.Header
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/flashcard/review_flashcard", r.URL.Path)
			headers = r.Header.Clone()
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			w.WriteHeader(http.StatusNoContent)
		}))
		defer server.Close()

		c := NewClient(WithBaseURL(server.URL+"/"), WithToken("tok"), WithCSRFToken("csrf"))
		err := c.SubmitRating(context.Background(), study.RatingRequest{CardID: "12", Rating: study.RatingHard})
		require.NoError(t, err)

		assert.Equal(t, map[string]any{"card_id": "12", "rating": "1"}, got)
		assert.Equal(t, "application/json", headers.Get("Content-Type"))
		assert.Equal(t, "Bearer tok", headers.Get("Authorization"))
		assert.Equal(t, "csrf", headers.Get("X-CSRFToken"))
	})

	t.Run("reviewer payload carries student id", func(t *testing.T) {
		var got map[string]any
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"status":"ok"}`))
		}))
		defer server.Close()

		c := NewClient(WithBaseURL(server.URL))
		err := c.SubmitRating(context.Background(), study.RatingRequest{CardID: "7", Rating: study.RatingEasy, SubjectID: "42"})
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"card_id": "7", "rating": "3", "student_id": "42"}, got)
	})

	t.Run("server error is not retried", func(t *testing.T) {
		var calls atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			http.Error(w, "boom", http.StatusInternalServerError)
		}))
		defer server.Close()

		c := NewClient(WithBaseURL(server.URL), WithRetry(fastRetry()))
		err := c.SubmitRating(context.Background(), study.RatingRequest{CardID: "1", Rating: study.RatingMedium})

		var se *StatusError
		require.ErrorAs(t, err, &se)
		assert.Equal(t, http.StatusInternalServerError, se.Code)
		assert.Contains(t, err.Error(), "boom")
		assert.Equal(t, int32(1), calls.Load())
	})

	t.Run("expired login redirect is a failure", func(t *testing.T) {
		var loginHits atomic.Int32
		mux := http.NewServeMux()
		mux.HandleFunc("/flashcard/review_flashcard", func(w http.ResponseWriter, r *http.Request) {
			http.Redirect(w, r, "/auth/login", http.StatusFound)
		})
		mux.HandleFunc("/auth/login", func(w http.ResponseWriter, r *http.Request) {
			loginHits.Add(1)
			w.Header().Set("Content-Type", "text/html")
			_, _ = w.Write([]byte("<html><body>Sign in</body></html>"))
		})
		server := httptest.NewServer(mux)
		defer server.Close()

		c := NewClient(WithBaseURL(server.URL))
		err := c.SubmitRating(context.Background(), study.RatingRequest{CardID: "1", Rating: study.RatingEasy})

		var se *StatusError
		require.ErrorAs(t, err, &se)
		assert.Equal(t, http.StatusFound, se.Code)
		assert.Equal(t, "/auth/login", se.Location)
		assert.Zero(t, loginHits.Load())
	})

	t.Run("redirect is reported with a caller http client", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Redirect(w, r, "/auth/login", http.StatusSeeOther)
		}))
		defer server.Close()

		hc := &http.Client{Timeout: time.Second}
		c := NewClient(WithBaseURL(server.URL), WithHTTPClient(hc))
		err := c.SubmitRating(context.Background(), study.RatingRequest{CardID: "1", Rating: study.RatingEasy})

		var se *StatusError
		require.ErrorAs(t, err, &se)
		assert.Equal(t, http.StatusSeeOther, se.Code)
		assert.Nil(t, hc.CheckRedirect)
	})

	t.Run("html body on 200 is a failure", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/html")
			_, _ = w.Write([]byte("<!doctype html><title>Login</title>"))
		}))
		defer server.Close()

		err := NewClient(WithBaseURL(server.URL)).SubmitRating(context.Background(), study.RatingRequest{CardID: "1", Rating: study.RatingHard})
		require.ErrorIs(t, err, ErrUnexpectedBody)
	})
}

func TestComplete(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		want    study.Completion
		wantErr bool
	}{
		{"json", http.StatusOK, `{"status":"success","message":"Nice!"}`, study.Completion{Status: "success", Message: "Nice!"}, false},
		{"partial json", http.StatusOK, `{"status":"info"}`, study.Completion{Status: "info"}, false},
		{"empty body", http.StatusOK, ``, study.Completion{}, false},
		{"html body", http.StatusOK, `<html>done</html>`, study.Completion{}, false},
		{"server error", http.StatusBadGateway, `bad gateway`, study.Completion{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "/flashcard/complete", r.URL.Path)
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			got, err := NewClient(WithBaseURL(server.URL)).Complete(context.Background())
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestComplete_HonoursContextDeadline(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	_, err := NewClient(WithBaseURL(server.URL)).Complete(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestCards(t *testing.T) {
	t.Run("decodes server cards", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			_, _ = w.Write([]byte(`[{"id":1,"question":"dog","answer":"cachorro","level":null},{"id":2,"question":"cat","answer":"gato","level":4}]`))
		}))
		defer server.Close()

		cards, err := NewClient(WithBaseURL(server.URL)).Cards(context.Background())
		require.NoError(t, err)
		require.Len(t, cards, 2)
		assert.Equal(t, "1", cards[0].ID)
		assert.Equal(t, "", cards[0].Level)
		assert.Equal(t, "4", cards[1].Level)
	})

	t.Run("retries transient failures", func(t *testing.T) {
		var calls atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if calls.Add(1) < 3 {
				w.WriteHeader(http.StatusServiceUnavailable)
				return
			}
			_, _ = w.Write([]byte(`[]`))
		}))
		defer server.Close()

		cards, err := NewClient(WithBaseURL(server.URL), WithRetry(fastRetry())).Cards(context.Background())
		require.NoError(t, err)
		assert.Empty(t, cards)
		assert.Equal(t, int32(3), calls.Load())
	})

	t.Run("does not retry client errors", func(t *testing.T) {
		var calls atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer server.Close()

		_, err := NewClient(WithBaseURL(server.URL), WithRetry(fastRetry())).Cards(context.Background())
		var se *StatusError
		require.ErrorAs(t, err, &se)
		assert.Equal(t, http.StatusUnauthorized, se.Code)
		assert.Equal(t, int32(1), calls.Load())
	})

	t.Run("gives up after max attempts", func(t *testing.T) {
		var calls atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		_, err := NewClient(WithBaseURL(server.URL), WithRetry(fastRetry())).Cards(context.Background())
		require.Error(t, err)
		assert.Equal(t, int32(3), calls.Load())
	})
}

func TestForms(t *testing.T) {
	type request struct {
		path   string
		action string
		q, a   string
	}
	var last request
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, r.ParseForm())
		assert.Equal(t, formContentType, r.Header.Get("Content-Type"))
		last = request{
			path:   r.URL.EscapedPath(),
			action: r.PostForm.Get("action"),
			q:      r.PostForm.Get("question"),
			a:      r.PostForm.Get("answer"),
		}
		if r.PostForm.Get("question") == "dup" {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"status":"danger","message":"Card already exists"}`))
			return
		}
		_, _ = w.Write([]byte(`{"status":"success","message":"Saved"}`))
	}))
	defer server.Close()

	c := NewClient(WithBaseURL(server.URL))
	ctx := context.Background()

	t.Run("add", func(t *testing.T) {
		res, err := c.AddCard(ctx, deck.CardForm{Question: " dog ", Answer: "cachorro"})
		require.NoError(t, err)
		assert.True(t, res.OK())
		assert.Equal(t, request{path: "/flashcard/addcards", q: "dog", a: "cachorro"}, last)
	})

	t.Run("edit", func(t *testing.T) {
		res, err := c.EditCard(ctx, "a/b", deck.CardForm{Question: "cat", Answer: "gato"})
		require.NoError(t, err)
		assert.Equal(t, "Saved", res.Message)
		assert.Equal(t, request{path: "/flashcard/edit_card/a%2Fb", action: "edit", q: "cat", a: "gato"}, last)
	})

	t.Run("delete", func(t *testing.T) {
		res, err := c.DeleteCard(ctx, "9")
		require.NoError(t, err)
		assert.True(t, res.OK())
		assert.Equal(t, request{path: "/flashcard/edit_card/9", action: "delete"}, last)
	})

	t.Run("rejection with message is a result", func(t *testing.T) {
		res, err := c.AddCard(ctx, deck.CardForm{Question: "dup", Answer: "x"})
		require.NoError(t, err)
		assert.False(t, res.OK())
		assert.Equal(t, "Card already exists", res.Message)
	})

	t.Run("invalid form never hits the server", func(t *testing.T) {
		last = request{}
		_, err := c.AddCard(ctx, deck.CardForm{Question: "dog"})
		var fe *deck.FormError
		require.ErrorAs(t, err, &fe)
		assert.Equal(t, request{}, last)
	})
}

func TestForms_NonJSONBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "<html>redirect</html>")
	}))
	defer server.Close()

	_, err := NewClient(WithBaseURL(server.URL)).DeleteCard(context.Background(), "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode form result")
}

func TestTranslate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var in map[string]string
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		if in["text"] == "" {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":"Missing 'text' in request"}`))
			return
		}
		_, _ = w.Write([]byte(`{"translation":"cachorro"}`))
	}))
	defer server.Close()

	c := NewClient(WithBaseURL(server.URL))
	got, err := c.Translate(context.Background(), "dog")
	require.NoError(t, err)
	assert.Equal(t, "cachorro", got)

	_, err = c.Translate(context.Background(), "")
	require.Error(t, err)
}

func TestWithPaths_KeepsDefaultsForEmptyFields(t *testing.T) {
	c := NewClient(WithPaths(Paths{Review: "/api/review"}))
	assert.Equal(t, "/api/review", c.paths.Review)
	assert.Equal(t, DefaultPaths().Complete, c.paths.Complete)
	assert.Equal(t, DefaultBaseURL, c.BaseURL())
}

func TestBackoff_CapsRetryAfter(t *testing.T) {
	c := NewClient(WithRetry(fastRetry()))

	wait := c.backoff(0, &StatusError{Code: http.StatusTooManyRequests, RetryAfter: time.Hour})
	assert.Equal(t, fastRetry().MaxWait, wait)

	wait = c.backoff(0, &StatusError{Code: http.StatusServiceUnavailable, RetryAfter: time.Millisecond})
	assert.Equal(t, time.Millisecond, wait)
}

func TestCards_RetryAfterIsCapped(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.Header().Set("Retry-After", "3600")
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := NewClient(WithBaseURL(server.URL), WithRetry(fastRetry())).Cards(ctx)
	require.NoError(t, err)
	assert.Equal(t, int32(2), calls.Load())
}

func TestStatusError_Temporary(t *testing.T) {
	assert.True(t, (&StatusError{Code: 503}).Temporary())
	assert.True(t, (&StatusError{Code: 429}).Temporary())
	assert.False(t, (&StatusError{Code: 404}).Temporary())
	assert.Equal(t, 2*time.Second, parseRetryAfter("2"))
	assert.Zero(t, parseRetryAfter("Wed, 21 Oct 2015 07:28:00 GMT"))
}
