package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os/signal"
	"syscall"
	"time"

	"github.com/segmentio/kafka-go"
)

type Completion struct {
	SessionID     string `json:"sessionId"`
	OrderNumber   string `json:"orderNumber"`
	Product       string `json:"product"`
	ProductID     string `json:"productId"`
	Amount        string `json:"amount"`
	Status        string `json:"status"`
	PaymentStatus string `json:"paymentStatus"`
	CreatedAt     string `json:"createdAt"`
}

var products = []struct {
	id, name, price string
}{
	{"nothing-basic", "Absolutely Nothing", "9.99"},
	{"nothing-premium", "Premium Nothing", "99.00"},
	{"nothing-void", "Limited Edition Void", "499.00"},
}

func randomString(n int) string {
	letters := []rune("ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789")
	b := make([]rune, n)
	for i := range b {
		b[i] = letters[rand.Intn(len(letters))]
	}
	return string(b)
}

func generateCompletion(sessionID string) Completion {
	p := products[rand.Intn(len(products))]
	return Completion{
		SessionID:     sessionID,
		OrderNumber:   "BN-" + randomString(8),
		Product:       p.name,
		ProductID:     p.id,
		Amount:        p.price,
		Status:        "confirmed",
		PaymentStatus: "paid",
		CreatedAt:     time.Now().Format(time.RFC3339),
	}
}

func main() {
	broker := flag.String("broker", "localhost:9092", "kafka broker")
	topic := flag.String("topic", "checkout-completions", "completion topic")
	session := flag.String("session", "", "session id to complete; random when empty")
	flag.Parse()

	writer := &kafka.Writer{
		Addr:  kafka.TCP(*broker),
		Topic: *topic,
	}
	defer writer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	ticker := time.NewTicker(2 * time.Second)
	for {
		select {
		case <-ticker.C:
			sessionID := *session
			if sessionID == "" {
				sessionID = fmt.Sprintf("session-%s", randomString(6))
			}
			completion := generateCompletion(sessionID)
			data, _ := json.Marshal(completion)
			if err := writer.WriteMessages(ctx, kafka.Message{Key: []byte(sessionID), Value: data}); err != nil {
				log.Println("failed to write completion:", err)
				continue
			}
			log.Println("completion generated", completion.OrderNumber, "for", sessionID)
		case <-ctx.Done():
			return
		}
	}
}
