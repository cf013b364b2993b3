package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/rpg-cards/internal/handlers/cards/v1alpha1"
)

var (
	serverAddr    string
	remoteTimeout time.Duration
	remoteRefs    referenceFlags
)

var remoteCmd = &cobra.Command{
	Use:   "remote",
	Short: "Generate cards through a running card server",
	RunE:  runRemote,
}

func init() {
	flags := remoteCmd.Flags()
	remoteRefs.register(flags)
	flags.StringVar(&serverAddr, "server", "localhost:50051", "card server address")
	flags.DurationVar(&remoteTimeout, "timeout", 5*time.Minute, "request timeout")
	flags.StringVarP(&outputPath, "output", "o", "", "output file, stdout when empty")
	flags.Bool("fail-fast", false, "stop at the first failed reference")
}

func runRemote(cmd *cobra.Command, _ []string) error {
	// validate locally before dialing
	if _, err := remoteRefs.input(); err != nil {
		return err
	}
	failFast, err := cmd.Flags().GetBool("fail-fast")
	if err != nil {
		return err
	}

	req, err := structpb.NewStruct(remoteRefs.request(failFast))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), remoteTimeout)
	defer cancel()

	conn, err := grpc.NewClient(serverAddr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return fmt.Errorf("failed to connect: %w", err)
	}
	defer func() {
		if err := conn.Close(); err != nil {
			slog.Warn("failed to close connection", "error", err)
		}
	}()

	resp, err := v1alpha1.NewCardServiceClient(conn).GenerateCards(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to generate cards: %w", err)
	}

	fields := resp.AsMap()
	cardList, _ := fields["cards"].([]any)
	if cardList == nil {
		cardList = []any{}
	}
	data, err := json.MarshalIndent(cardList, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode cards: %w", err)
	}
	if err := writeOutput(data, cmd.OutOrStdout()); err != nil {
		return err
	}

	failures, _ := fields["failures"].([]any)
	for _, f := range failures {
		failure, _ := f.(map[string]any)
		slog.Error("reference failed", "reference", failure["reference"], "code", failure["code"], "error", failure["message"])
	}
	slog.Info("cards generated", "run_id", fields["run_id"], "cards", len(cardList), "failures", len(failures))
	if len(failures) > 0 {
		return fmt.Errorf("%d reference(s) failed", len(failures))
	}
	return nil
}

// request encodes the references as the fields of a GenerateCards request
func (f *referenceFlags) request(failFast bool) map[string]any {
	fields := map[string]any{}
	add := func(name string, values []string) {
		if len(values) == 0 {
			return
		}
		list := make([]any, len(values))
		for i, v := range values {
			list[i] = v
		}
		fields[name] = list
	}
	add(v1alpha1.FieldSpells, f.spells)
	add(v1alpha1.FieldSpellFilters, f.spellFilters)
	add(v1alpha1.FieldMagicItems, f.magicItems)
	add(v1alpha1.FieldFeats, f.feats)
	add(v1alpha1.FieldEldritchInvocations, f.eldritchInvocations)
	add(v1alpha1.FieldClassFeatures, f.classFeatures)
	add(v1alpha1.FieldAncestryFeatures, f.ancestryFeatures)
	add(v1alpha1.FieldBackgrounds, f.backgrounds)
	if f.legend != "" {
		fields[v1alpha1.FieldLegend] = f.legend
	}
	if failFast {
		fields[v1alpha1.FieldFailFast] = true
	}
	return fields
}
