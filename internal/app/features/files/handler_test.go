package files_test

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"testing"

	"github.com/RajaaKacemi/alx-files-manager/internal/app/features/files"
	"github.com/RajaaKacemi/alx-files-manager/internal/app/system/accessctl"
	"github.com/RajaaKacemi/alx-files-manager/internal/app/system/content"
	"github.com/RajaaKacemi/alx-files-manager/internal/app/system/directory"
	"github.com/RajaaKacemi/alx-files-manager/internal/domain/models"
	"github.com/RajaaKacemi/alx-files-manager/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// fileDoc mirrors the JSON shape of a serialized file record.
type fileDoc struct {
	ID       string `json:"id"`
	UserID   string `json:"userId"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	IsPublic bool   `json:"isPublic"`
	ParentID string `json:"parentId"`
}

func newServer(t *testing.T) (http.Handler, string) {
	t.Helper()

	owner := primitive.NewObjectID()
	token := "test-session-token"

	sessions := testutil.NewFakeSessions()
	sessions.Tokens[token] = owner.Hex()

	store := testutil.NewFakeFileStore()
	blobs := testutil.NewFakeBlobs()
	log := zap.NewNop()
	auth := accessctl.New(sessions, log)

	h := files.NewHandler(
		directory.New(auth, store, blobs, log),
		content.New(auth, store, blobs, log),
		log,
	)
	return files.Routes(h), token
}

func createFile(t *testing.T, srv http.Handler, token, body string) fileDoc {
	t.Helper()
	rec := testutil.NewRecorder()
	srv.ServeHTTP(rec, testutil.NewTokenRequest(http.MethodPost, "/", body, token))
	rec.AssertStatus(t, http.StatusCreated)
	var doc fileDoc
	rec.DecodeJSON(t, &doc)
	return doc
}

func TestUploadFolder(t *testing.T) {
	srv, token := newServer(t)

	doc := createFile(t, srv, token, `{"name":"images","type":"folder"}`)
	if doc.ID == "" {
		t.Error("response has no id")
	}
	if doc.Type != models.TypeFolder {
		t.Errorf("type = %q, want folder", doc.Type)
	}
	if doc.ParentID != "0" {
		t.Errorf("parentId = %q, want \"0\"", doc.ParentID)
	}

	// The blob key must never be serialized.
	rec := testutil.NewRecorder()
	srv.ServeHTTP(rec, testutil.NewTokenRequest(http.MethodGet, "/"+doc.ID, "", token))
	rec.AssertStatus(t, http.StatusOK)
	var raw map[string]any
	rec.DecodeJSON(t, &raw)
	if _, ok := raw["localPath"]; ok {
		t.Error("response exposes localPath")
	}
}

func TestUploadRejections(t *testing.T) {
	srv, token := newServer(t)

	file := createFile(t, srv, token, fmt.Sprintf(`{"name":"notes.txt","type":"file","data":%q}`,
		base64.StdEncoding.EncodeToString([]byte("notes"))))

	tests := []struct {
		name       string
		token      string
		body       string
		wantStatus int
		wantError  string
	}{
		{"no token", "", `{"name":"a","type":"folder"}`, http.StatusUnauthorized, "Unauthorized"},
		{"bad token", "bogus", `{"name":"a","type":"folder"}`, http.StatusUnauthorized, "Unauthorized"},
		{"missing name", token, `{"type":"folder"}`, http.StatusBadRequest, "Missing name"},
		{"missing type", token, `{"name":"a"}`, http.StatusBadRequest, "Missing type"},
		{"missing data", token, `{"name":"a","type":"file"}`, http.StatusBadRequest, "Missing data"},
		{"parent not found", token,
			fmt.Sprintf(`{"name":"a","type":"folder","parentId":%q}`, primitive.NewObjectID().Hex()),
			http.StatusBadRequest, "Parent not found"},
		{"parent not a folder", token,
			fmt.Sprintf(`{"name":"a","type":"folder","parentId":%q}`, file.ID),
			http.StatusBadRequest, "Parent is not a folder"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := testutil.NewRecorder()
			srv.ServeHTTP(rec, testutil.NewTokenRequest(http.MethodPost, "/", tt.body, tt.token))
			rec.AssertStatus(t, tt.wantStatus)
			rec.AssertError(t, tt.wantError)
		})
	}
}

func TestShow(t *testing.T) {
	srv, token := newServer(t)
	doc := createFile(t, srv, token, `{"name":"images","type":"folder"}`)

	t.Run("owned record", func(t *testing.T) {
		rec := testutil.NewRecorder()
		srv.ServeHTTP(rec, testutil.NewTokenRequest(http.MethodGet, "/"+doc.ID, "", token))
		rec.AssertStatus(t, http.StatusOK)
		var got fileDoc
		rec.DecodeJSON(t, &got)
		if got.ID != doc.ID {
			t.Errorf("id = %q, want %q", got.ID, doc.ID)
		}
	})

	t.Run("unknown record", func(t *testing.T) {
		rec := testutil.NewRecorder()
		srv.ServeHTTP(rec, testutil.NewTokenRequest(http.MethodGet, "/"+primitive.NewObjectID().Hex(), "", token))
		rec.AssertStatus(t, http.StatusNotFound)
		rec.AssertError(t, "Not found")
	})

	t.Run("no token", func(t *testing.T) {
		rec := testutil.NewRecorder()
		srv.ServeHTTP(rec, testutil.NewRequest(http.MethodGet, "/"+doc.ID, ""))
		rec.AssertStatus(t, http.StatusUnauthorized)
		rec.AssertError(t, "Unauthorized")
	})
}

func TestIndex(t *testing.T) {
	srv, token := newServer(t)

	folder := createFile(t, srv, token, `{"name":"images","type":"folder"}`)
	child := createFile(t, srv, token, fmt.Sprintf(`{"name":"cat.png","type":"image","parentId":%q,"data":%q}`,
		folder.ID, base64.StdEncoding.EncodeToString([]byte("png"))))

	t.Run("root listing", func(t *testing.T) {
		rec := testutil.NewRecorder()
		srv.ServeHTTP(rec, testutil.NewTokenRequest(http.MethodGet, "/", "", token))
		rec.AssertStatus(t, http.StatusOK)
		var got []fileDoc
		rec.DecodeJSON(t, &got)
		if len(got) != 1 || got[0].ID != folder.ID {
			t.Errorf("root listing = %v, want only the folder", got)
		}
	})

	t.Run("listing under a parent", func(t *testing.T) {
		rec := testutil.NewRecorder()
		srv.ServeHTTP(rec, testutil.NewTokenRequest(http.MethodGet, "/?parentId="+folder.ID, "", token))
		rec.AssertStatus(t, http.StatusOK)
		var got []fileDoc
		rec.DecodeJSON(t, &got)
		if len(got) != 1 || got[0].ID != child.ID {
			t.Errorf("child listing = %v, want only the image", got)
		}
	})

	t.Run("page past the end is an empty array", func(t *testing.T) {
		rec := testutil.NewRecorder()
		srv.ServeHTTP(rec, testutil.NewTokenRequest(http.MethodGet, "/?page=5", "", token))
		rec.AssertStatus(t, http.StatusOK)
		if got := rec.Body.String(); got != "[]\n" && got != "[]" {
			t.Errorf("body = %q, want empty JSON array", got)
		}
	})

	t.Run("no token", func(t *testing.T) {
		rec := testutil.NewRecorder()
		srv.ServeHTTP(rec, testutil.NewRequest(http.MethodGet, "/", ""))
		rec.AssertStatus(t, http.StatusUnauthorized)
		rec.AssertError(t, "Unauthorized")
	})
}

func TestPublishUnpublish(t *testing.T) {
	srv, token := newServer(t)
	doc := createFile(t, srv, token, `{"name":"images","type":"folder"}`)

	rec := testutil.NewRecorder()
	srv.ServeHTTP(rec, testutil.NewTokenRequest(http.MethodPut, "/"+doc.ID+"/publish", "", token))
	rec.AssertStatus(t, http.StatusOK)
	var published fileDoc
	rec.DecodeJSON(t, &published)
	if !published.IsPublic {
		t.Error("publish left isPublic false")
	}

	rec = testutil.NewRecorder()
	srv.ServeHTTP(rec, testutil.NewTokenRequest(http.MethodPut, "/"+doc.ID+"/unpublish", "", token))
	rec.AssertStatus(t, http.StatusOK)
	var unpublished fileDoc
	rec.DecodeJSON(t, &unpublished)
	if unpublished.IsPublic {
		t.Error("unpublish left isPublic true")
	}

	t.Run("unknown record", func(t *testing.T) {
		rec := testutil.NewRecorder()
		srv.ServeHTTP(rec, testutil.NewTokenRequest(http.MethodPut, "/"+primitive.NewObjectID().Hex()+"/publish", "", token))
		rec.AssertStatus(t, http.StatusNotFound)
		rec.AssertError(t, "Not found")
	})

	t.Run("no token", func(t *testing.T) {
		rec := testutil.NewRecorder()
		srv.ServeHTTP(rec, testutil.NewRequest(http.MethodPut, "/"+doc.ID+"/publish", ""))
		rec.AssertStatus(t, http.StatusUnauthorized)
		rec.AssertError(t, "Unauthorized")
	})
}

func TestData(t *testing.T) {
	srv, token := newServer(t)

	contentBytes := []byte("Hello Webstack!\n")
	private := createFile(t, srv, token, fmt.Sprintf(`{"name":"hello.txt","type":"file","data":%q}`,
		base64.StdEncoding.EncodeToString(contentBytes)))
	public := createFile(t, srv, token, fmt.Sprintf(`{"name":"cat.png","type":"image","isPublic":true,"data":%q}`,
		base64.StdEncoding.EncodeToString([]byte("png bytes"))))
	folder := createFile(t, srv, token, `{"name":"images","type":"folder"}`)

	t.Run("owner reads private content", func(t *testing.T) {
		rec := testutil.NewRecorder()
		srv.ServeHTTP(rec, testutil.NewTokenRequest(http.MethodGet, "/"+private.ID+"/data", "", token))
		rec.AssertStatus(t, http.StatusOK)
		if got := rec.Body.String(); got != string(contentBytes) {
			t.Errorf("body = %q, want %q", got, contentBytes)
		}
	})

	t.Run("private content without token reads as missing", func(t *testing.T) {
		rec := testutil.NewRecorder()
		srv.ServeHTTP(rec, testutil.NewRequest(http.MethodGet, "/"+private.ID+"/data", ""))
		rec.AssertStatus(t, http.StatusNotFound)
		rec.AssertError(t, "Not found")
	})

	t.Run("public content without token", func(t *testing.T) {
		rec := testutil.NewRecorder()
		srv.ServeHTTP(rec, testutil.NewRequest(http.MethodGet, "/"+public.ID+"/data", ""))
		rec.AssertStatus(t, http.StatusOK)
		if got := rec.Header().Get("Content-Type"); got != "image/png" {
			t.Errorf("Content-Type = %q, want image/png", got)
		}
		if got := rec.Body.String(); got != "png bytes" {
			t.Errorf("body = %q, want %q", got, "png bytes")
		}
	})

	t.Run("publish then read without token", func(t *testing.T) {
		rec := testutil.NewRecorder()
		srv.ServeHTTP(rec, testutil.NewTokenRequest(http.MethodPut, "/"+private.ID+"/publish", "", token))
		rec.AssertStatus(t, http.StatusOK)

		rec = testutil.NewRecorder()
		srv.ServeHTTP(rec, testutil.NewRequest(http.MethodGet, "/"+private.ID+"/data", ""))
		rec.AssertStatus(t, http.StatusOK)
	})

	t.Run("folder has no content", func(t *testing.T) {
		rec := testutil.NewRecorder()
		srv.ServeHTTP(rec, testutil.NewTokenRequest(http.MethodGet, "/"+folder.ID+"/data", "", token))
		rec.AssertStatus(t, http.StatusBadRequest)
		rec.AssertError(t, "A folder doesn't have content")
	})
}
