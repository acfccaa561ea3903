package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"qna-service/internal/api/routes"
	"qna-service/internal/models"
	"qna-service/internal/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testAPI struct {
	engine    *gin.Engine
	questions *testutil.FakeQuestionRepository
	answers   *testutil.FakeAnswerRepository
	votes     *testutil.FakeVoteRepository
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()
	questions := testutil.NewFakeQuestionRepository()
	answers := testutil.NewFakeAnswerRepository()
	votes := testutil.NewFakeVoteRepository(answers)

	router := routes.NewRouterWithRepositories(questions, answers, votes)
	router.SetupRoutes()

	return &testAPI{
		engine:    router.GetEngine(),
		questions: questions,
		answers:   answers,
		votes:     votes,
	}
}

func (a *testAPI) request(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	a.engine.ServeHTTP(w, req)
	return w
}

func (a *testAPI) seedQuestion(t *testing.T, title, description, category string) models.Question {
	t.Helper()
	question := models.Question{Title: title, Description: description, Category: category}
	require.NoError(t, a.questions.Create(context.Background(), &question))
	return question
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder) []map[string]interface{} {
	t.Helper()
	var body struct {
		Data []map[string]interface{} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body.Data
}

func TestTestRoute(t *testing.T) {
	api := newTestAPI(t)
	w := api.request(t, http.MethodGet, "/test", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Server API is working")
}

func TestGetAllQuestions(t *testing.T) {
	api := newTestAPI(t)

	t.Run("empty store returns empty array", func(t *testing.T) {
		w := api.request(t, http.MethodGet, "/questions", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"data":[]}`, w.Body.String())
	})

	t.Run("returns all rows", func(t *testing.T) {
		api.seedQuestion(t, "first", "d1", "general")
		api.seedQuestion(t, "second", "d2", "general")

		w := api.request(t, http.MethodGet, "/questions", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Len(t, decodeData(t, w), 2)
	})
}

func TestCreateQuestion(t *testing.T) {
	api := newTestAPI(t)

	t.Run("create then fetch returns the submitted fields", func(t *testing.T) {
		w := api.request(t, http.MethodPost, "/questions",
			`{"title":"How does ILIKE work?","description":"Pattern matching details","category":"databases"}`)
		require.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), "Question created successfully.")

		fetched := api.request(t, http.MethodGet, "/questions/1", "")
		require.Equal(t, http.StatusOK, fetched.Code)
		var body struct {
			Data models.Question `json:"data"`
		}
		require.NoError(t, json.Unmarshal(fetched.Body.Bytes(), &body))
		assert.Equal(t, "How does ILIKE work?", body.Data.Title)
		assert.Equal(t, "Pattern matching details", body.Data.Description)
		assert.Equal(t, "databases", body.Data.Category)
	})

	t.Run("missing field rejected before persistence", func(t *testing.T) {
		before := len(api.questions.Questions)
		w := api.request(t, http.MethodPost, "/questions", `{"title":"only a title"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Len(t, api.questions.Questions, before)
	})
}

func TestSearchQuestions(t *testing.T) {
	api := newTestAPI(t)
	api.seedQuestion(t, "Foo fighters of SQL", "d", "music")
	api.seedQuestion(t, "Plain question", "d", "foomatic")
	api.seedQuestion(t, "FOO in uppercase", "d", "music")

	t.Run("neither parameter given", func(t *testing.T) {
		w := api.request(t, http.MethodGet, "/questions/search", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid search parameters.")
	})

	t.Run("title matches case-insensitively", func(t *testing.T) {
		w := api.request(t, http.MethodGet, "/questions/search?title=foo", "")
		require.Equal(t, http.StatusOK, w.Code)
		data := decodeData(t, w)
		assert.Len(t, data, 2)
	})

	t.Run("title and category are AND-combined", func(t *testing.T) {
		w := api.request(t, http.MethodGet, "/questions/search?title=foo&category=music", "")
		require.Equal(t, http.StatusOK, w.Code)
		data := decodeData(t, w)
		assert.Len(t, data, 2)
		for _, row := range data {
			assert.Equal(t, "music", row["category"])
		}
	})

	t.Run("no matches returns empty array", func(t *testing.T) {
		w := api.request(t, http.MethodGet, "/questions/search?title=nomatch", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"data":[]}`, w.Body.String())
	})
}

func TestGetQuestionByID(t *testing.T) {
	api := newTestAPI(t)
	question := api.seedQuestion(t, "t", "d", "c")

	t.Run("found", func(t *testing.T) {
		w := api.request(t, http.MethodGet, fmt.Sprintf("/questions/%d", question.ID), "")
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("missing id is 404", func(t *testing.T) {
		w := api.request(t, http.MethodGet, "/questions/999999", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "Question not found.")
	})

	t.Run("non-numeric id is 404", func(t *testing.T) {
		w := api.request(t, http.MethodGet, "/questions/abc", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestUpdateQuestion(t *testing.T) {
	api := newTestAPI(t)
	question := api.seedQuestion(t, "old title", "old description", "old")

	t.Run("updates in place", func(t *testing.T) {
		w := api.request(t, http.MethodPut, fmt.Sprintf("/questions/%d", question.ID),
			`{"title":"new title","description":"new description","category":"new"}`)
		require.Equal(t, http.StatusOK, w.Code)

		updated := api.questions.Questions[question.ID]
		assert.Equal(t, "new title", updated.Title)
		assert.Equal(t, "new description", updated.Description)
		assert.Equal(t, "new", updated.Category)
	})

	t.Run("invalid payload is 400", func(t *testing.T) {
		w := api.request(t, http.MethodPut, fmt.Sprintf("/questions/%d", question.ID), `{"title":"t"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("missing question is 404", func(t *testing.T) {
		w := api.request(t, http.MethodPut, "/questions/999999",
			`{"title":"t","description":"d","category":"c"}`)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestDeleteQuestion(t *testing.T) {
	api := newTestAPI(t)

	t.Run("never-created question is 404", func(t *testing.T) {
		w := api.request(t, http.MethodDelete, "/questions/999999", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("delete then fetch is 404", func(t *testing.T) {
		question := api.seedQuestion(t, "t", "d", "c")

		w := api.request(t, http.MethodDelete, fmt.Sprintf("/questions/%d", question.ID), "")
		require.Equal(t, http.StatusOK, w.Code)

		fetched := api.request(t, http.MethodGet, fmt.Sprintf("/questions/%d", question.ID), "")
		assert.Equal(t, http.StatusNotFound, fetched.Code)
	})

	t.Run("cascades to answers and votes", func(t *testing.T) {
		question := api.seedQuestion(t, "t", "d", "c")
		qPath := fmt.Sprintf("/questions/%d", question.ID)

		created := api.request(t, http.MethodPost, qPath+"/answers", `{"content":"an answer"}`)
		require.Equal(t, http.StatusOK, created.Code)
		voted := api.request(t, http.MethodPost, qPath+"/vote", `{"vote":1}`)
		require.Equal(t, http.StatusOK, voted.Code)
		answerVote := api.request(t, http.MethodPost, "/answers/1/vote", `{"vote":-1}`)
		require.Equal(t, http.StatusOK, answerVote.Code)

		w := api.request(t, http.MethodDelete, qPath, "")
		require.Equal(t, http.StatusOK, w.Code)

		answers, err := api.answers.FindByQuestionID(context.Background(), question.ID)
		require.NoError(t, err)
		assert.Empty(t, answers)
		assert.Zero(t, api.votes.QuestionVoteCount(question.ID))
		assert.Empty(t, api.votes.AnswerVotes)
	})
}

func TestAnswers(t *testing.T) {
	api := newTestAPI(t)
	question := api.seedQuestion(t, "t", "d", "c")
	qPath := fmt.Sprintf("/questions/%d", question.ID)

	t.Run("question with no answers returns empty array", func(t *testing.T) {
		w := api.request(t, http.MethodGet, qPath+"/answers", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"data":[]}`, w.Body.String())
	})

	t.Run("missing question is 404", func(t *testing.T) {
		w := api.request(t, http.MethodGet, "/questions/999999/answers", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("create and list", func(t *testing.T) {
		w := api.request(t, http.MethodPost, qPath+"/answers", `{"content":"first answer"}`)
		require.Equal(t, http.StatusOK, w.Code)

		listed := api.request(t, http.MethodGet, qPath+"/answers", "")
		require.Equal(t, http.StatusOK, listed.Code)
		assert.Len(t, decodeData(t, listed), 1)
	})

	t.Run("oversized content is rejected and nothing persists", func(t *testing.T) {
		listed := api.request(t, http.MethodGet, qPath+"/answers", "")
		before := len(decodeData(t, listed))

		content := strings.Repeat("x", models.MaxAnswerContentLength+1)
		w := api.request(t, http.MethodPost, qPath+"/answers", `{"content":"`+content+`"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)

		listed = api.request(t, http.MethodGet, qPath+"/answers", "")
		assert.Len(t, decodeData(t, listed), before)
	})

	t.Run("create on missing question is 404", func(t *testing.T) {
		w := api.request(t, http.MethodPost, "/questions/999999/answers", `{"content":"orphan"}`)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("delete all answers is idempotent", func(t *testing.T) {
		first := api.request(t, http.MethodDelete, qPath+"/answers", "")
		assert.Equal(t, http.StatusOK, first.Code)

		second := api.request(t, http.MethodDelete, qPath+"/answers", "")
		assert.Equal(t, http.StatusOK, second.Code)

		listed := api.request(t, http.MethodGet, qPath+"/answers", "")
		assert.JSONEq(t, `{"data":[]}`, listed.Body.String())
	})
}

func TestVoteOnQuestion(t *testing.T) {
	api := newTestAPI(t)
	question := api.seedQuestion(t, "t", "d", "c")
	votePath := fmt.Sprintf("/questions/%d/vote", question.ID)

	t.Run("valid vote appends a row", func(t *testing.T) {
		w := api.request(t, http.MethodPost, votePath, `{"vote":1}`)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 1, api.votes.QuestionVoteCount(question.ID))
	})

	t.Run("vote on missing question is 404", func(t *testing.T) {
		w := api.request(t, http.MethodPost, "/questions/999999/vote", `{"vote":1}`)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("zero vote is 400", func(t *testing.T) {
		w := api.request(t, http.MethodPost, votePath, `{"vote":0}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, 1, api.votes.QuestionVoteCount(question.ID))
	})
}

func TestStoreFailureIsGeneric500(t *testing.T) {
	api := newTestAPI(t)
	api.questions.Err = errors.New("connection refused")

	w := api.request(t, http.MethodGet, "/questions", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Unable to fetch questions.")
	// the underlying store error must not leak to the client
	assert.NotContains(t, w.Body.String(), "connection refused")
}

func TestConcurrentVotes(t *testing.T) {
	api := newTestAPI(t)
	question := api.seedQuestion(t, "t", "d", "c")
	votePath := fmt.Sprintf("/questions/%d/vote", question.ID)

	const voters = 50
	var wg sync.WaitGroup
	statuses := make([]int, voters)

	for i := 0; i < voters; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			body := `{"vote":1}`
			if i%2 == 0 {
				body = `{"vote":-1}`
			}
			req, _ := http.NewRequest(http.MethodPost, votePath, strings.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			api.engine.ServeHTTP(w, req)
			statuses[i] = w.Code
		}(i)
	}
	wg.Wait()

	for i, code := range statuses {
		assert.Equal(t, http.StatusOK, code, "voter %d", i)
	}
	assert.Equal(t, voters, api.votes.QuestionVoteCount(question.ID))
}
