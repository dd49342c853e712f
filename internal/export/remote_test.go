package export

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uddict/dictation-app/cli/internal/api"
)

func TestRemoteExporterPostsDocument(t *testing.T) {
	var body string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/documents", r.URL.Path)
		b, _ := io.ReadAll(r.Body)
		body = string(b)
		w.Write([]byte(`{"data":{"id":"doc-9","url":"http://docs.local/doc-9.pdf","pages":1}}`))
	}))
	defer srv.Close()

	res, err := RemoteExporter{Client: api.NewClient(srv.URL, "")}.Export(context.Background(),
		Document{Title: "Progress Notes", Record: note()})
	require.NoError(t, err)
	assert.Equal(t, "http://docs.local/doc-9.pdf", res.Location)
	assert.Equal(t, FormatRemote, res.Format)
	assert.Equal(t, `{"title":"Progress Notes","record":{"vitals":{"bp":"120/80","temp":null},"notes":""}}`, body)
}

func TestRemoteExporterFallsBackToID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":{"id":"doc-10"}}`))
	}))
	defer srv.Close()

	res, err := RemoteExporter{Client: api.NewClient(srv.URL, "")}.Export(context.Background(),
		Document{Title: "SOAP Notes", Record: note()})
	require.NoError(t, err)
	assert.Equal(t, "doc-10", res.Location)
}

func TestRemoteExporterThroughBridgeSurfacesServiceError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(`{"error":{"code":"UPSTREAM","message":"renderer down"}}`))
	}))
	defer srv.Close()

	b := NewBridge(RemoteExporter{Client: api.NewClient(srv.URL, "")}, nil)
	_, err := b.Export(context.Background(), note(), "SOAP Notes")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "UPSTREAM: renderer down")
	assert.False(t, b.Pending())
}

func TestNewPicksExporter(t *testing.T) {
	e, err := New("http://docs.local", "k", "", "")
	require.NoError(t, err)
	assert.IsType(t, RemoteExporter{}, e)

	e, err = New("", "", "/tmp/out", "markdown")
	require.NoError(t, err)
	assert.Equal(t, FileExporter{Dir: "/tmp/out", Format: "md"}, e)

	_, err = New("", "", "", "docx")
	assert.Error(t, err)
}
