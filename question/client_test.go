package question_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/leetgen/question"
)

func TestClient_Fetch(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		body    string
		wantErr error
		status  int
	}{
		"success": {
			status: http.StatusOK,
			body: `{"data":{"question":{
				"questionId":"1","title":"Two Sum","titleSlug":"two-sum",
				"content":"<p>Given an array</p>",
				"codeSnippets":[{"langSlug":"typescript","code":"function twoSum(nums: number[], target: number): number[] {\n\n};"}],
				"metaData":"{}","exampleTestcases":"[2,7,11,15]\n9"}}}`,
		},
		"server error": {
			status:  http.StatusInternalServerError,
			body:    `oops`,
			wantErr: question.ErrFetch,
		},
		"missing question": {
			status:  http.StatusOK,
			body:    `{"data":{"question":null}}`,
			wantErr: question.ErrNotFound,
		},
		"malformed payload": {
			status:  http.StatusOK,
			body:    `{"data":`,
			wantErr: question.ErrNotFound,
		},
		"invalid record": {
			status:  http.StatusOK,
			body:    `{"data":{"question":{"questionId":"abc","title":"T","titleSlug":"t","content":"c"}}}`,
			wantErr: question.ErrInvalidRecord,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)

				raw, err := io.ReadAll(r.Body)
				assert.NoError(t, err)

				var req struct {
					Variables map[string]string `json:"variables"`
					Query     string            `json:"query"`
				}

				assert.NoError(t, json.Unmarshal(raw, &req))
				assert.Equal(t, "two-sum", req.Variables["titleSlug"])
				assert.Contains(t, req.Query, "exampleTestcases")

				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			}))
			t.Cleanup(srv.Close)

			client := question.NewClient(question.WithEndpoint(srv.URL), question.WithHTTPClient(srv.Client()))

			rec, err := client.Fetch(t.Context(), "two-sum")
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				assert.Nil(t, rec)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "1", rec.ID)
			assert.Equal(t, "Two Sum", rec.Title)
			assert.Equal(t, []string{"[2,7,11,15]", "9"}, rec.Testcases())
		})
	}
}
