// Package main implements very simple grpc client that can be used for testing collectivepage grpc server.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	appGrpc "github.com/kazup01/frontend/internal/api/grpc"
	"github.com/kazup01/frontend/internal/app"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

var (
	serverAddr     = flag.String("s", "localhost:9090", "The server address in the format of host:port")
	collectiveSlug = flag.String("c", "", "Collective slug")
	backerType     = flag.String("b", "", "Backer type, eg. sponsors, backers or contributors")
	tierSlug       = flag.String("t", "", "Tier slug")
	stats          = flag.Bool("stats", false, "Print members count instead of members")
	timeout        = flag.Duration("timeout", 30*time.Second, "Request timeout")
)

func main() {
	flag.Parse()

	conn, err := grpc.Dial(*serverAddr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		log.Fatalf("failed to dial: %v", err)
	}
	defer conn.Close()
	client := appGrpc.NewMembersClient(conn)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	req := appGrpc.NewRequestStruct(app.NewMembersRequest(*collectiveSlug, *backerType, *tierSlug))

	if *stats {
		resp, err := client.FetchMembersStats(ctx, req)
		if err != nil {
			log.Fatalf("server response error: %v", err)
		}
		st := resp.AsMap()
		fmt.Printf("%v: %v\n", st["name"], st["count"])
		return
	}

	resp, err := client.FetchMembers(ctx, req)
	if err != nil {
		log.Fatalf("server response error: %v", err)
	}

	fmt.Print("Type         | Slug\n")
	fmt.Print("------------------------\n")
	for _, v := range resp.GetFields()["members"].GetListValue().GetValues() {
		f := v.GetStructValue().GetFields()
		fmt.Printf("%-12s | %s\n", f["type"].GetStringValue(), f["slug"].GetStringValue())
	}
}
