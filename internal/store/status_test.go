package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestCreateStatusCheck(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("insert", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		check := &StatusCheck{ID: "s1", ClientName: "muse-web", Timestamp: time.Now().UTC()}
		require.NoError(mt, New(mt.DB).CreateStatusCheck(context.Background(), check))

		insertEvt := mt.GetStartedEvent()
		require.Equal(mt, "insert", insertEvt.CommandName)

		name, lookupErr := insertEvt.Command.LookupErr("documents", "0", "client_name")
		require.NoError(mt, lookupErr)
		assert.Equal(mt, "muse-web", name.StringValue())
	})
}

func TestListStatusChecks(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("bounded fetch", func(mt *mtest.T) {
		doc := bson.D{
			{Key: "id", Value: "s1"},
			{Key: "client_name", Value: "muse-web"},
			{Key: "timestamp", Value: time.Now().UTC()},
		}
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "muse.status_checks", mtest.FirstBatch, doc))

		checks, err := New(mt.DB).ListStatusChecks(context.Background())
		require.NoError(mt, err)
		require.Len(mt, checks, 1)
		assert.Equal(mt, "muse-web", checks[0].ClientName)

		findEvt := mt.GetStartedEvent()
		require.Equal(mt, "find", findEvt.CommandName)

		limit, lookupErr := findEvt.Command.LookupErr("limit")
		require.NoError(mt, lookupErr)
		assert.EqualValues(mt, fetchLimit, limit.AsInt64())
	})
}
