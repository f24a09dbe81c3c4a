package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

// VideoRoom is a room allocated at the video-conferencing provider.
type VideoRoom struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

var (
	videoRoomAPIKeyEnv = "VIDEOROOM_API_KEY"
	videoRoomAPIURL    = "https://api.daily.co/v1/rooms"
)

type videoRoomRequest struct {
	Name       string              `json:"name"`
	Privacy    string              `json:"privacy"`
	Properties videoRoomProperties `json:"properties"`
}

type videoRoomProperties struct {
	Exp int64 `json:"exp"`
}

// CreateVideoRoom allocates a private room for a live class. The room
// expires a day after the class starts.
func CreateVideoRoom(name string, startsAt time.Time) (*VideoRoom, error) {
	apiKey := os.Getenv(videoRoomAPIKeyEnv)
	if apiKey == "" {
		return nil, fmt.Errorf("VIDEOROOM_API_KEY is required in environment variables")
	}

	payload, err := json.Marshal(videoRoomRequest{
		Name:    name,
		Privacy: "private",
		Properties: videoRoomProperties{
			Exp: startsAt.Add(24 * time.Hour).Unix(),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("error encoding room request: %v", err)
	}

	req, err := http.NewRequest("POST", videoRoomAPIURL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("error creating request: %v", err)
	}

	req.Header.Set("Authorization", "Bearer "+apiKey)
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error making request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("video room API error: status=%d, body=%s", resp.StatusCode, string(body))
	}

	var room VideoRoom
	if err := json.NewDecoder(resp.Body).Decode(&room); err != nil {
		return nil, fmt.Errorf("error decoding response: %v", err)
	}

	return &room, nil
}
