package consensus

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/modsagraphy/universa/internal/item"
	"github.com/modsagraphy/universa/internal/types"
	"github.com/modsagraphy/universa/test/integration/helper"
)

const clusterTimeout = 15 * time.Second

func TestCluster_SimpleItemApprovesEverywhere(t *testing.T) {
	c := helper.NewCluster(t, 5, helper.FastConfig())

	it := item.New(time.Hour)
	res := c.GetNode(1).Node.RegisterItem(it)
	require.True(t, res.State.IsPending(), "fresh item must start pending, got %s", res.State)

	c.RequireState(it.ID(), types.Approved, clusterTimeout)

	final := c.GetNode(1).Node.WaitItem(it.ID(), clusterTimeout)
	require.Equal(t, types.Approved, final.State)
	require.True(t, final.HaveCopy, "the registering node keeps the body")
}

func TestCluster_ResubmitReturnsSettledResult(t *testing.T) {
	c := helper.NewCluster(t, 5, helper.FastConfig())

	it := item.New(time.Hour)
	c.GetNode(1).Node.RegisterItem(it)
	c.RequireState(it.ID(), types.Approved, clusterTimeout)

	res := c.GetNode(3).Node.RegisterItem(it)
	require.Equal(t, types.Approved, res.State, "resubmission must return the settled state")
}

func TestCluster_NewItemsCommitOnEveryNode(t *testing.T) {
	c := helper.NewCluster(t, 5, helper.FastConfig())

	created := item.New(time.Hour)
	parent := item.New(time.Hour).AddNewItem(created)

	c.GetNode(2).Node.RegisterItem(parent)
	c.RequireState(parent.ID(), types.Approved, clusterTimeout)
	c.RequireState(created.ID(), types.Approved, clusterTimeout)
}

func TestCluster_RevocationRemovesTargetEverywhere(t *testing.T) {
	c := helper.NewCluster(t, 5, helper.FastConfig())

	target := item.New(time.Hour)
	c.GetNode(1).Node.RegisterItem(target)
	c.RequireState(target.ID(), types.Approved, clusterTimeout)

	revoker := item.New(time.Hour).AddRevokingItem(target)
	c.GetNode(4).Node.RegisterItem(revoker)

	c.RequireState(revoker.ID(), types.Approved, clusterTimeout)
	c.RequireState(target.ID(), types.Revoked, clusterTimeout)
}

func TestCluster_BadReferenceIsDeclinedEverywhere(t *testing.T) {
	c := helper.NewCluster(t, 5, helper.FastConfig())

	it := item.New(time.Hour).AddReferencedItem(types.NewHashId([]byte("nobody-approved-this")))
	c.GetNode(1).Node.RegisterItem(it)

	c.RequireState(it.ID(), types.Declined, clusterTimeout)
}

func TestCluster_DeclinedItemLeavesNoApprovals(t *testing.T) {
	c := helper.NewCluster(t, 5, helper.FastConfig())

	created := item.New(time.Hour)
	it := item.New(time.Hour).
		AddReferencedItem(types.NewHashId([]byte("missing"))).
		AddNewItem(created)

	c.GetNode(1).Node.RegisterItem(it)
	c.RequireState(it.ID(), types.Declined, clusterTimeout)

	c.EachNode(func(n *helper.TestNode) {
		res := n.Node.CheckItem(created.ID())
		require.NotEqual(t, types.Approved, res.State,
			"%s approved an output of a declined item", n.Info.Name)
	})
}

func TestCluster_CheckItemOnColdNodeSeesLedgerOnly(t *testing.T) {
	c := helper.NewCluster(t, 5, helper.FastConfig())

	unknown := types.NewHashId([]byte("never-submitted"))
	c.EachNode(func(n *helper.TestNode) {
		res := n.Node.CheckItem(unknown)
		require.Equal(t, types.Undefined, res.State)
		require.Zero(t, n.Node.ProcessorCount(), "CheckItem must not start processing on %s", n.Info.Name)
	})
}
