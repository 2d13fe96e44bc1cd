//go:build ignore

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/fatih/color"
)

const baseURL = "http://localhost:3000/api"

// Pretty print JSON helper
func prettyPrint(body []byte) {
	var v interface{}
	if err := json.Unmarshal(body, &v); err != nil {
		fmt.Println(string(body))
		return
	}
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Println(string(body))
		return
	}
	fmt.Println(string(b))
}

// Request helper
func sendRequest(method, url, token string, body interface{}) (*http.Response, []byte, error) {
	var bodyReader io.Reader
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		bodyReader = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, baseURL+url, bodyReader)
	if err != nil {
		return nil, nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	return resp, respBody, err
}

type chatReply struct {
	Data struct {
		Reply     string `json:"reply"`
		Intent    string `json:"intent"`
		SessionId string `json:"session_id"`
	} `json:"data"`
}

func main() {
	token := os.Getenv("TEST_JWT")
	if token == "" {
		color.Red("TEST_JWT is not set. Export a user token first.")
		os.Exit(1)
	}

	color.Cyan("🚀 Starting Chat & Negotiation API Test\n")

	color.Yellow("\n[ADMIN] 1. Get Negotiation Thresholds")
	resp, body, err := sendRequest("GET", "/admin/v1/thresholds", token, nil)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	prettyPrint(body)

	color.Yellow("\n[USER] 2. Greeting")
	sessionId := ""
	resp, body, err = sendRequest("POST", "/chat/v1/message", token, map[string]string{
		"message": "hello",
	})
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	prettyPrint(body)

	var reply chatReply
	if err := json.Unmarshal(body, &reply); err == nil {
		sessionId = reply.Data.SessionId
	}
	if sessionId == "" {
		color.Red("No session id in reply; aborting conversational flow")
		os.Exit(1)
	}

	turn := func(label, message string) {
		color.Yellow("\n[USER] %s", label)
		resp, body, err := sendRequest("POST", "/chat/v1/message", token, map[string]string{
			"message":    message,
			"session_id": sessionId,
		})
		if err != nil {
			color.Red("Failed: %v", err)
			return
		}
		color.Green("Status: %s", resp.Status)
		prettyPrint(body)
	}

	turn("3. Product Lookup", "do you have a laptop?")
	turn("4. Ask for a Discount", "can you give me a discount?")
	turn("5. Counter Offer", "how about 45000?")
	turn("6. Add to Cart", "ok add it to my cart")

	color.Yellow("\n[USER] 7. View Cart")
	resp, body, err = sendRequest("GET", "/cart/v1", token, nil)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	prettyPrint(body)

	color.Yellow("\n[USER] 8. Chat History")
	resp, body, err = sendRequest("GET", "/chat/v1/history", token, nil)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	prettyPrint(body)

	color.Cyan("\n✅ Done")
}
