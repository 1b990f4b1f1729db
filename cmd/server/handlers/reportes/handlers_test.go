package reportes

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"alerta-vecinal/cmd/server/testutil"
	"alerta-vecinal/internal/services/reports"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

const reportesEndpoint = "/api/reportes"

// MockService mocks the reports service
type MockService struct {
	mock.Mock
}

func (m *MockService) Create(ctx context.Context, req reports.CreateReportRequest) (*reports.ReportResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*reports.ReportResponse), args.Error(1)
}

func (m *MockService) List(ctx context.Context, usuarioID string) (*reports.ListReportsResponse, error) {
	args := m.Called(ctx, usuarioID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*reports.ListReportsResponse), args.Error(1)
}

// MockImageStore mocks the image store
type MockImageStore struct {
	mock.Mock
}

func (m *MockImageStore) Save(fh *multipart.FileHeader) (string, error) {
	args := m.Called(fh)
	return args.String(0), args.Error(1)
}

func setupReportesTest(t *testing.T) (*MockService, *MockImageStore, *fiber.App) {
	t.Helper()

	svc := &MockService{}
	images := &MockImageStore{}
	app := testutil.CreateTestApp(t)

	h := NewHandlers(svc, images)
	app.Post(reportesEndpoint, h.Create)
	app.Get(reportesEndpoint, h.List)

	return svc, images, app
}

// multipartRequest builds a multipart POST with the given form fields and an
// optional file part named "imagen".
func multipartRequest(t *testing.T, fields map[string]string, withImage bool) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if withImage {
		part, err := w.CreateFormFile("imagen", "foto.jpg")
		require.NoError(t, err)
		_, err = part.Write([]byte("fake-jpeg-bytes"))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", reportesEndpoint, &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func sampleReport(usuarioID string) *reports.Report {
	return &reports.Report{
		ID:        bson.NewObjectID(),
		UsuarioID: usuarioID,
		Fecha:     time.Now(),
		Ubicacion: reports.Ubicacion{Lat: -33.4489, Lng: -70.6693},
	}
}

func TestCreate(t *testing.T) {
	t.Run("success without image", func(t *testing.T) {
		svc, images, app := setupReportesTest(t)
		svc.On("Create", mock.Anything, mock.MatchedBy(func(req reports.CreateReportRequest) bool {
			return req.UsuarioID == "u1" && req.Lat != nil && *req.Lat == -33.4489 && req.Imagen == ""
		})).Return(&reports.ReportResponse{Report: sampleReport("u1")}, nil)

		resp, err := app.Test(multipartRequest(t, map[string]string{
			"usuarioId": "u1", "lat": "-33.4489", "lng": "-70.6693",
		}, false))
		require.NoError(t, err)
		assert.Equal(t, 201, resp.StatusCode)

		body := testutil.DecodeBody(t, resp)
		assert.Equal(t, true, body["ok"])
		assert.Equal(t, MsgReportCreated, body["mensaje"])
		assert.NotNil(t, body["data"])
		svc.AssertExpectations(t)
		images.AssertNotCalled(t, "Save")
	})

	t.Run("success with image stores it first", func(t *testing.T) {
		svc, images, app := setupReportesTest(t)
		images.On("Save", mock.AnythingOfType("*multipart.FileHeader")).
			Return("/uploads/abc.jpg", nil)
		svc.On("Create", mock.Anything, mock.MatchedBy(func(req reports.CreateReportRequest) bool {
			return req.Imagen == "/uploads/abc.jpg"
		})).Return(&reports.ReportResponse{Report: sampleReport("u1")}, nil)

		resp, err := app.Test(multipartRequest(t, map[string]string{
			"usuarioId": "u1", "lat": "1.5", "lng": "2.5",
		}, true))
		require.NoError(t, err)
		assert.Equal(t, 201, resp.StatusCode)
		svc.AssertExpectations(t)
		images.AssertExpectations(t)
	})

	t.Run("missing usuarioId", func(t *testing.T) {
		svc, _, app := setupReportesTest(t)

		resp, err := app.Test(multipartRequest(t, map[string]string{
			"lat": "1", "lng": "2",
		}, false))
		require.NoError(t, err)
		assert.Equal(t, 400, resp.StatusCode)

		body := testutil.DecodeBody(t, resp)
		assert.Equal(t, false, body["ok"])
		assert.Equal(t, MsgMissingFields, body["mensaje"])
		svc.AssertNotCalled(t, "Create")
	})

	t.Run("unparseable coordinates", func(t *testing.T) {
		svc, _, app := setupReportesTest(t)

		resp, err := app.Test(multipartRequest(t, map[string]string{
			"usuarioId": "u1", "lat": "not-a-number", "lng": "2",
		}, false))
		require.NoError(t, err)
		assert.Equal(t, 400, resp.StatusCode)
		svc.AssertNotCalled(t, "Create")
	})

	t.Run("image store failure", func(t *testing.T) {
		svc, images, app := setupReportesTest(t)
		images.On("Save", mock.AnythingOfType("*multipart.FileHeader")).
			Return("", assert.AnError)

		resp, err := app.Test(multipartRequest(t, map[string]string{
			"usuarioId": "u1", "lat": "1", "lng": "2",
		}, true))
		require.NoError(t, err)
		assert.Equal(t, 500, resp.StatusCode)

		body := testutil.DecodeBody(t, resp)
		assert.Equal(t, MsgImageSaveFailed, body["mensaje"])
		svc.AssertNotCalled(t, "Create")
	})

	t.Run("service failure maps to 500", func(t *testing.T) {
		svc, _, app := setupReportesTest(t)
		svc.On("Create", mock.Anything, mock.AnythingOfType("reports.CreateReportRequest")).
			Return(nil, assert.AnError)

		resp, err := app.Test(multipartRequest(t, map[string]string{
			"usuarioId": "u1", "lat": "1", "lng": "2",
		}, false))
		require.NoError(t, err)
		assert.Equal(t, 500, resp.StatusCode)

		body := testutil.DecodeBody(t, resp)
		assert.Equal(t, MsgCreateFailed, body["mensaje"])
	})
}

func TestList(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc, _, app := setupReportesTest(t)
		svc.On("List", mock.Anything, "u1").
			Return(&reports.ListReportsResponse{Reports: []*reports.Report{sampleReport("u1")}}, nil)

		resp, err := app.Test(httptest.NewRequest("GET", reportesEndpoint+"?usuarioId=u1", nil))
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		body := testutil.DecodeBody(t, resp)
		assert.Equal(t, true, body["ok"])
		assert.Len(t, body["data"], 1)
	})

	t.Run("missing query param", func(t *testing.T) {
		svc, _, app := setupReportesTest(t)

		resp, err := app.Test(httptest.NewRequest("GET", reportesEndpoint, nil))
		require.NoError(t, err)
		assert.Equal(t, 400, resp.StatusCode)

		body := testutil.DecodeBody(t, resp)
		assert.Equal(t, false, body["ok"])
		assert.Equal(t, MsgMissingUsuario, body["mensaje"])
		svc.AssertNotCalled(t, "List")
	})

	t.Run("service failure maps to 500", func(t *testing.T) {
		svc, _, app := setupReportesTest(t)
		svc.On("List", mock.Anything, "u1").Return(nil, assert.AnError)

		resp, err := app.Test(httptest.NewRequest("GET", reportesEndpoint+"?usuarioId=u1", nil))
		require.NoError(t, err)
		assert.Equal(t, 500, resp.StatusCode)
	})
}
