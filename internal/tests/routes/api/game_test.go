package api

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/lk16/reversi/internal/models"
	"github.com/lk16/reversi/internal/othello"
	"github.com/lk16/reversi/internal/tests"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGame(t *testing.T) {
	app := tests.NewTestApp()

	req, err := tests.NewJSONRequest(http.MethodPost, "/api/game/new", nil)
	require.NoError(t, err)

	resp, err := app.Test(req)
	require.NoError(t, err)

	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var response models.NewGameResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&response))

	_, err = uuid.Parse(response.GameID)
	require.NoError(t, err)
	require.Equal(t, othello.NewBoardStart(), response.Board)
	require.Equal(t, othello.BLACK, response.Player)
	require.Equal(t, []othello.Move{
		{Row: 2, Col: 3},
		{Row: 3, Col: 2},
		{Row: 4, Col: 5},
		{Row: 5, Col: 4},
	}, response.ValidMoves)
}

func TestValidMoves(t *testing.T) {
	start := models.BoardRows(othello.NewBoardStart())

	cases := []struct {
		name           string
		payload        any
		wantStatusCode int
		wantCount      int
	}{
		{
			name:           "black",
			payload:        models.GameRequest{Board: start, Player: 1},
			wantStatusCode: http.StatusOK,
			wantCount:      4,
		},
		{
			name:           "white",
			payload:        models.GameRequest{Board: start, Player: 2},
			wantStatusCode: http.StatusOK,
			wantCount:      4,
		},
		{
			name:           "invalid player",
			payload:        models.GameRequest{Board: start, Player: 0},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:           "short board",
			payload:        models.GameRequest{Board: start[:4], Player: 1},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:           "no payload",
			payload:        nil,
			wantStatusCode: http.StatusBadRequest,
		},
	}

	app := tests.NewTestApp()

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			req, err := tests.NewJSONRequest(http.MethodPost, "/api/game/valid-moves", tt.payload)
			assert.NoError(t, err)

			resp, err := app.Test(req)
			assert.NoError(t, err)

			defer resp.Body.Close()

			assert.Equal(t, tt.wantStatusCode, resp.StatusCode)

			if tt.wantStatusCode == http.StatusOK {
				var response models.ValidMovesResponse
				err = json.NewDecoder(resp.Body).Decode(&response)
				assert.NoError(t, err)
				assert.Len(t, response.Moves, tt.wantCount)
			}
		})
	}
}

func TestPlayerMove(t *testing.T) {
	start := models.BoardRows(othello.NewBoardStart())

	cases := []struct {
		name           string
		payload        models.MoveRequest
		wantStatusCode int
	}{
		{
			name: "legal",
			payload: models.MoveRequest{
				GameRequest: models.GameRequest{GameID: uuid.New().String(), Board: start, Player: 1},
				Row:         2,
				Col:         3,
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name: "occupied",
			payload: models.MoveRequest{
				GameRequest: models.GameRequest{Board: start, Player: 1},
				Row:         3,
				Col:         3,
			},
			wantStatusCode: http.StatusUnprocessableEntity,
		},
		{
			name: "out of range",
			payload: models.MoveRequest{
				GameRequest: models.GameRequest{Board: start, Player: 1},
				Row:         9,
				Col:         0,
			},
			wantStatusCode: http.StatusUnprocessableEntity,
		},
		{
			name: "bad game id",
			payload: models.MoveRequest{
				GameRequest: models.GameRequest{GameID: "abc", Board: start, Player: 1},
				Row:         2,
				Col:         3,
			},
			wantStatusCode: http.StatusBadRequest,
		},
	}

	app := tests.NewTestApp()

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			req, err := tests.NewJSONRequest(http.MethodPost, "/api/game/move", tt.payload)
			require.NoError(t, err)

			resp, err := app.Test(req)
			require.NoError(t, err)

			defer resp.Body.Close()

			require.Equal(t, tt.wantStatusCode, resp.StatusCode)

			if tt.wantStatusCode != http.StatusOK {
				var body map[string]string
				require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
				require.NotEmpty(t, body["error"])
				return
			}

			var response models.MoveResponse
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&response))
			require.Equal(t, 1, response.Flipped)
			require.Equal(t, 4, response.Black)
			require.Equal(t, 1, response.White)
			require.Equal(t, othello.BLACK, response.Board[3][3])
			require.Equal(t, othello.WHITE, response.NextPlayer)
			require.False(t, response.GameOver)
		})
	}
}

func TestPlayerMove_MalformedBody(t *testing.T) {
	app := tests.NewTestApp()

	req, err := http.NewRequest(http.MethodPost, "/api/game/move", strings.NewReader("{"))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)

	defer resp.Body.Close()

	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestBotMove(t *testing.T) {
	app := tests.NewTestApp()

	for _, difficulty := range []int{1, 2, 3} {
		payload := models.BotMoveRequest{
			GameRequest: models.GameRequest{Board: models.BoardRows(othello.NewBoardStart()), Player: 1},
			Difficulty:  difficulty,
		}

		req, err := tests.NewJSONRequest(http.MethodPost, "/api/game/bot-move", payload)
		require.NoError(t, err)

		resp, err := app.Test(req, -1)
		require.NoError(t, err)

		defer resp.Body.Close()

		require.Equal(t, http.StatusOK, resp.StatusCode)

		var response models.BotMoveResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&response))

		start := othello.NewBoardStart()
		require.True(t, start.IsValidMove(response.Move.Row, response.Move.Col, othello.BLACK))
		require.Equal(t, othello.BLACK, response.Board[response.Move.Row][response.Move.Col])
		require.Equal(t, 4, response.Black)
		require.Equal(t, 1, response.White)
	}
}

func TestBotMove_NoMove(t *testing.T) {
	app := tests.NewTestApp()

	board := othello.NewBoardEmpty()
	board[0][0] = othello.BLACK
	board[0][1] = othello.WHITE

	payload := models.BotMoveRequest{
		GameRequest: models.GameRequest{Board: models.BoardRows(board), Player: 2},
		Difficulty:  othello.DifficultyMedium,
	}

	req, err := tests.NewJSONRequest(http.MethodPost, "/api/game/bot-move", payload)
	require.NoError(t, err)

	resp, err := app.Test(req)
	require.NoError(t, err)

	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var response models.BotMoveResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&response))
	require.Equal(t, othello.NoMove, response.Move)
	require.Equal(t, board, response.Board)
	require.Equal(t, othello.BLACK, response.NextPlayer)
}

func TestStats(t *testing.T) {
	app := tests.NewTestApp()

	req, err := http.NewRequest(http.MethodGet, "/api/stats", nil)
	require.NoError(t, err)

	resp, err := app.Test(req)
	require.NoError(t, err)
	resp.Body.Close()

	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	req.Header.Set("x-token", tests.TestToken)

	resp, err = app.Test(req)
	require.NoError(t, err)

	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var stats []models.DifficultyStats
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&stats))
	require.Empty(t, stats)
}
