package v1alpha1_test

import (
	"context"
	"net"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/rpg-cards/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-cards/internal/errors"
	v1alpha1 "github.com/KirkDiggler/rpg-cards/internal/handlers/cards/v1alpha1"
	"github.com/KirkDiggler/rpg-cards/internal/orchestrators/batch"
	"github.com/KirkDiggler/rpg-cards/internal/orchestrators/cards"
	cardsmock "github.com/KirkDiggler/rpg-cards/internal/orchestrators/cards/mock"
	"github.com/KirkDiggler/rpg-cards/internal/render"
	"github.com/KirkDiggler/rpg-cards/internal/vocab"
)

const bufSize = 1024 * 1024

type HandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *cardsmock.MockService
	server      *grpc.Server
	conn        *grpc.ClientConn
	client      v1alpha1.CardServiceClient
	ctx         context.Context
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockService = cardsmock.NewMockService(s.ctrl)
	s.ctx = context.Background()

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{CardService: s.mockService})
	s.Require().NoError(err)

	lis := bufconn.Listen(bufSize)
	s.server = grpc.NewServer()
	v1alpha1.RegisterCardServiceServer(s.server, handler)
	go func() {
		_ = s.server.Serve(lis)
	}()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	s.Require().NoError(err)
	s.conn = conn
	s.client = v1alpha1.NewCardServiceClient(conn)
}

func (s *HandlerTestSuite) TearDownTest() {
	_ = s.conn.Close()
	s.server.Stop()
	s.ctrl.Finish()
}

func (s *HandlerTestSuite) request(fields map[string]any) *structpb.Struct {
	req, err := structpb.NewStruct(fields)
	s.Require().NoError(err)
	return req
}

func (s *HandlerTestSuite) TestNewHandler() {
	_, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{})
	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *HandlerTestSuite) TestGenerateCards() {
	expected := &cards.GenerateInput{
		Spells:         []dnd5e.Reference{{Language: vocab.French, Slug: "boule-de-feu"}},
		ClassFeatures:  []dnd5e.ClassFeatureReference{{Language: vocab.English, Class: vocab.ClassCleric, Title: "Turn Undead"}},
		LegendLanguage: vocab.French,
	}

	s.mockService.EXPECT().Generate(gomock.Any(), expected).Return(&cards.GenerateOutput{
		RunID: "run_1",
		Cards: []*render.Card{{
			Count:    1,
			Color:    "#43AA8B",
			Title:    "Boule de feu",
			Icon:     "fire-ring",
			Contents: []string{"title | Boule de feu", "fill |"},
			Tags:     []string{"spell"},
		}},
		Failures: []batch.Failure{{
			Reference: "en:no-such-spell",
			Err:       errors.FetchFailed("en", "no-such-spell", "https://www.aidedd.org/dnd/sorts.php?vo=no-such-spell", 404),
		}},
	}, nil)

	resp, err := s.client.GenerateCards(s.ctx, s.request(map[string]any{
		"spells":         []any{"fr:boule-de-feu"},
		"class_features": []any{"en:cleric:Turn Undead"},
		"legend":         "fr",
	}))
	s.Require().NoError(err)

	out := resp.AsMap()
	s.Assert().Equal("run_1", out["run_id"])

	cardList, ok := out["cards"].([]any)
	s.Require().True(ok)
	s.Require().Len(cardList, 1)
	card := cardList[0].(map[string]any)
	s.Assert().Equal("Boule de feu", card["title"])
	s.Assert().Equal(float64(1), card["count"])
	s.Assert().Equal([]any{"title | Boule de feu", "fill |"}, card["contents"])
	s.Assert().NotContains(card, "background_image")

	failures := out["failures"].([]any)
	s.Require().Len(failures, 1)
	failure := failures[0].(map[string]any)
	s.Assert().Equal("en:no-such-spell", failure["reference"])
	s.Assert().Equal("FETCH_FAILED", failure["code"])
}

func (s *HandlerTestSuite) TestGenerateCardsRejectsMalformedReferences() {
	testCases := []struct {
		name   string
		fields map[string]any
	}{
		{name: "missing language", fields: map[string]any{"spells": []any{"fireball"}}},
		{name: "unknown class", fields: map[string]any{"class_features": []any{"en:bricklayer:Wall"}}},
		{name: "not a list", fields: map[string]any{"feats": "en:alert"}},
		{name: "not a string", fields: map[string]any{"feats": []any{42}}},
		{name: "bad legend", fields: map[string]any{"legend": "de"}},
		{name: "bad spell filter", fields: map[string]any{"spell_filters": []any{"wizard"}}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.client.GenerateCards(s.ctx, s.request(tc.fields))
			s.Require().Error(err)
			s.Assert().Equal(codes.InvalidArgument, status.Code(err))
		})
	}
}

func (s *HandlerTestSuite) TestGenerateCardsMapsServiceErrors() {
	s.mockService.EXPECT().Generate(gomock.Any(), gomock.Any()).
		Return(nil, errors.Wrap(errors.ScrapingFailed("fireball", "div.content"), "failed to resolve spell en:fireball"))

	_, err := s.client.GenerateCards(s.ctx, s.request(map[string]any{
		"spells":    []any{"en:fireball"},
		"fail_fast": true,
	}))
	s.Require().Error(err)
	s.Assert().Equal(codes.NotFound, status.Code(err))
}
