package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"sync"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	altitudeGrpc "liyu1981.xyz/altitude-guard/pkg/grpc"
	"liyu1981.xyz/altitude-guard/pkg/location"
	"liyu1981.xyz/altitude-guard/pkg/models"
)

var maxFixes int = 2000
var maxReaders int = 200
var httpHostPort string = "127.0.0.1:1080"
var grpcHostPort string = "127.0.0.1:10801"

var grpcClient *altitudeGrpc.AltitudeClient

var rnd *rand.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
var rndMu sync.Mutex

func main() {
	resp, err := http.Get(fmt.Sprintf("http://%s/healthz", httpHostPort))
	if err != nil {
		log.Fatal("Failed to connect to HTTP server:", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		log.Fatal("HTTP server not available")
	}

	fmt.Printf("http server verified\n")

	conn, err := grpc.NewClient(grpcHostPort, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		log.Fatal("Failed to connect to gRPC server:", err)
	}
	defer conn.Close()
	grpcClient = altitudeGrpc.NewAltitudeClient(conn)

	fmt.Printf("gRPC client created\n")

	// one simulated trekker from Lukla towards base camp
	trail := location.NewSimulated(2800, 2, 5400, uint64(time.Now().UnixNano()))
	fixes := make([]models.Fix, maxFixes)
	for i := range maxFixes {
		fix, _ := trail.CurrentFix(context.Background())
		fixes[i] = *fix
	}
	fmt.Printf("generated %v fixes\n", maxFixes)

	pushFix(fixes[0])
	if ok, err := grpcClient.StartTracking(context.Background()); err != nil || !ok {
		log.Fatalf("start tracking failed: ok=%v, err=%v", ok, err)
	}

	var startTime time.Time
	var usedTime time.Duration

	startTime = time.Now()
	wg := sync.WaitGroup{}
	for i := range maxFixes {
		wg.Add(1)
		go func() {
			pushFix(fixes[i])
			fmt.Printf("\rpushed fix %v", i)
			wg.Done()
		}()
	}
	wg.Wait()
	usedTime = time.Since(startTime)

	fmt.Printf(
		"\rpushed %v fixes: used time=%v seconds, throughput=%v action/second\n",
		maxFixes, usedTime.Seconds(), float64(maxFixes)/usedTime.Seconds(),
	)

	startTime = time.Now()
	wg = sync.WaitGroup{}
	for i := range maxReaders {
		wg.Add(1)
		go func() {
			doAction(i)
			wg.Done()
		}()
	}
	wg.Wait()
	usedTime = time.Since(startTime)

	fmt.Printf(
		"\n\rdid actions for %v readers: used time=%v seconds, throughput=%v action/second\n",
		maxReaders, usedTime.Seconds(), float64(maxReaders*4)/usedTime.Seconds(),
	)

	if _, err := grpcClient.StopTracking(context.Background()); err != nil {
		fmt.Printf("\nstop tracking failed: %v\n", err)
	}
}

func flipCoin() bool {
	rndMu.Lock()
	defer rndMu.Unlock()
	return rnd.Int31n(100000)%2 == 0
}

func rndSleep() {
	rndMu.Lock()
	d := time.Duration(100+rnd.Int31n(1000)) * time.Millisecond
	rndMu.Unlock()
	time.Sleep(d)
}

func pushFix(fix models.Fix) {
	if flipCoin() {
		jsonData, _ := json.Marshal(fix)
		resp, err := http.Post(fmt.Sprintf("http://%s/location", httpHostPort), "application/json", bytes.NewBuffer(jsonData))
		if err != nil {
			fmt.Printf("\nerror: %v\n", err)
			return
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusAccepted {
			fmt.Printf("\nresponse status code != 202: %v\n", resp.StatusCode)
		}
	} else {
		if err := grpcClient.PushFix(context.Background(), fix); err != nil {
			fmt.Printf("\nerror: %v\n", err)
		}
	}
}

func doAction(reader int) {
	actions := []func(){
		httpOrGrpc("/altitude/current", func(ctx context.Context) error {
			_, err := grpcClient.GetCurrentAltitude(ctx)
			return err
		}),
		httpOrGrpc("/altitude/history?hours=24", func(ctx context.Context) error {
			_, err := grpcClient.GetAltitudeHistory(ctx, 24)
			return err
		}),
		httpOrGrpc("/events", func(ctx context.Context) error {
			_, err := grpcClient.GetAltitudeEvents(ctx, false)
			return err
		}),
		httpOrGrpc("/recommendation", func(ctx context.Context) error {
			_, err := grpcClient.GetRecommendation(ctx)
			return err
		}),
	}
	actionNames := []string{
		"GetCurrentAltitude",
		"GetAltitudeHistory",
		"GetAltitudeEvents",
		"GetRecommendation",
	}
	rndMu.Lock()
	rnd.Shuffle(len(actions), func(i, j int) {
		actions[i], actions[j] = actions[j], actions[i]
		actionNames[i], actionNames[j] = actionNames[j], actionNames[i]
	})
	rndMu.Unlock()
	for index, action := range actions {
		action()
		fmt.Printf("\rexecuted action %v for reader %v", actionNames[index], reader)
		rndSleep()
	}
}

func httpOrGrpc(path string, call func(ctx context.Context) error) func() {
	return func() {
		if flipCoin() {
			resp, err := http.Get(fmt.Sprintf("http://%s%s", httpHostPort, path))
			if err != nil {
				fmt.Printf("\nerror: %v\n", err)
				return
			}
			defer resp.Body.Close()
			if resp.StatusCode != http.StatusOK {
				fmt.Printf("\nresponse status code != 200: %v\n", resp.StatusCode)
			}
		} else if err := call(context.Background()); err != nil {
			fmt.Printf("\nerror: %v\n", err)
		}
	}
}
