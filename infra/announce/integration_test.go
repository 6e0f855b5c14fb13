package announce

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	coreannounce "github.com/taldata/izun-sub001/core/announce"
)

// startMosquitto launches a disposable Mosquitto broker inside a Docker
// container and returns its broker URL along with a cleanup function.
func startMosquitto(ctx context.Context, t *testing.T) (string, func()) {
	t.Helper()
	conf := `listener 1883
allow_anonymous true
persistence false
log_dest stdout
`
	dir := t.TempDir()
	path := filepath.Join(dir, "mosquitto.conf")
	if err := os.WriteFile(path, []byte(conf), 0644); err != nil {
		t.Fatalf("write conf: %v", err)
	}

	req := tc.ContainerRequest{
		Image:        "eclipse-mosquitto:2.0",
		ExposedPorts: []string{"1883/tcp"},
		WaitingFor:   wait.ForListeningPort("1883/tcp"),
		Files: []tc.ContainerFile{
			{
				HostFilePath:      path,
				ContainerFilePath: "/mosquitto/config/mosquitto.conf",
				FileMode:          0644,
			},
		},
	}
	cont, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{ContainerRequest: req, Started: true})
	if err != nil {
		t.Fatalf("start container: %v", err)
	}
	cleanup := func() { _ = cont.Terminate(context.Background()) }

	host, err := cont.Host(ctx)
	if err != nil {
		cleanup()
		t.Fatalf("container host: %v", err)
	}
	port, err := cont.MappedPort(ctx, "1883")
	if err != nil {
		cleanup()
		t.Fatalf("mapped port: %v", err)
	}
	return fmt.Sprintf("tcp://%s:%s", host, port.Port()), cleanup
}

// TestIntegrationPublish verifies notice delivery through a real Mosquitto broker.
func TestIntegrationPublish(t *testing.T) {
	if os.Getenv("DOCKER_AVAILABLE") != "true" && os.Getenv("DOCKER_AVAILABLE") != "1" {
		t.Skip("docker not available")
	}
	ctx := context.Background()
	broker, cleanup := startMosquitto(ctx, t)
	defer cleanup()

	// give broker time to fully start
	time.Sleep(500 * time.Millisecond)

	opts := paho.NewClientOptions().AddBroker(broker).SetClientID("listener")
	listener := paho.NewClient(opts)
	var connectErr error
	for i := 0; i < 5; i++ {
		token := listener.Connect()
		token.Wait()
		connectErr = token.Error()
		if connectErr == nil {
			break
		}
		time.Sleep(500 * time.Millisecond)
	}
	if connectErr != nil {
		t.Fatalf("connect listener: %v", connectErr)
	}
	defer listener.Disconnect(250)

	msgCh := make(chan []byte, 1)
	if token := listener.Subscribe("izun/recommendations/+", 0, func(_ paho.Client, m paho.Message) {
		msgCh <- m.Payload()
	}); token.Wait() && token.Error() != nil {
		t.Fatalf("subscribe: %v", token.Error())
	}

	pub, err := New(Config{Enabled: true, Broker: broker})
	if err != nil {
		t.Fatalf("publisher: %v", err)
	}
	pp := pub.(*PahoPublisher)
	defer pp.Disconnect()

	notice := coreannounce.RecommendationNotice{
		DivisionID:      "d1",
		CommitteeTypeID: "ct1",
		TopDate:         time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC),
		TopScore:        150,
		Candidates:      4,
		GeneratedAt:     time.Now().UTC(),
	}
	if err := pp.PublishRecommendation(notice); err != nil {
		t.Fatalf("publish: %v", err)
	}

	select {
	case payload := <-msgCh:
		var got coreannounce.RecommendationNotice
		if err := json.Unmarshal(payload, &got); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if got.DivisionID != "d1" || got.TopScore != 150 || got.NoticeID == "" {
			t.Fatalf("unexpected notice: %+v", got)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timeout waiting for message")
	}
}
