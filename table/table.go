package table

import (
	"fmt"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/awesome-cap/hashmap"
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/pieces/consts"
	"github.com/ratel-online/pieces/deck"
	"github.com/ratel-online/pieces/player"
)

var tableIds int64 = 0
var seats = hashmap.New()

type seat struct {
	table  int64
	order  int64
	player *player.Player
}

// Table seats players by name. Seating is safe for concurrent use; dealing
// needs exclusive access to the deck being dealt.
type Table struct {
	sync.Mutex
	ID     int64
	orders int64
}

func New() *Table {
	return &Table{ID: atomic.AddInt64(&tableIds, 1)}
}

func (t *Table) key(name string) string {
	return fmt.Sprintf("%d:%s", t.ID, name)
}

func (t *Table) Seat(p *player.Player) error {
	if p == nil {
		return consts.ErrorsInvalidArgument.Errorf("cannot seat a nil player")
	}
	t.Mutex.Lock()
	defer t.Mutex.Unlock()
	if _, ok := seats.Get(t.key(p.Name())); ok {
		return consts.ErrorsInvalidArgument.Errorf("player %s already seated", p.Name())
	}
	t.orders++
	seats.Set(t.key(p.Name()), &seat{table: t.ID, order: t.orders, player: p})
	log.Infof("player %s seated at table %d\n", p.Name(), t.ID)
	return nil
}

func (t *Table) Leave(name string) {
	t.Mutex.Lock()
	defer t.Mutex.Unlock()
	if _, ok := seats.Get(t.key(name)); ok {
		seats.Del(t.key(name))
		log.Infof("player %s left table %d\n", name, t.ID)
	}
}

// Close unseats every player.
func (t *Table) Close() {
	for _, p := range t.Players() {
		t.Leave(p.Name())
	}
}

func (t *Table) Get(name string) (*player.Player, bool) {
	if v, ok := seats.Get(t.key(name)); ok {
		return v.(*seat).player, true
	}
	return nil, false
}

// Players lists seated players in seating order.
func (t *Table) Players() []*player.Player {
	list := make([]*seat, 0)
	seats.Foreach(func(e *hashmap.Entry) {
		if s := e.Value().(*seat); s.table == t.ID {
			list = append(list, s)
		}
	})
	sort.Slice(list, func(i, j int) bool {
		return list[i].order < list[j].order
	})
	players := make([]*player.Player, 0, len(list))
	for _, s := range list {
		players = append(players, s.player)
	}
	return players
}

func (t *Table) Size() int {
	return len(t.Players())
}

// Deal gives amount cards to every player, one at a time in seating order.
// When the deck runs out the cards already dealt stay in the hands.
func (t *Table) Deal(d *deck.Deck, amount int) error {
	if amount < 0 {
		return consts.ErrorsInvalidArgument.Errorf("cannot deal %d cards", amount)
	}
	players := t.Players()
	for i := 0; i < amount; i++ {
		for _, p := range players {
			if err := p.GetCard(d); err != nil {
				log.Errorf("deal to %s failed: %v\n", p.Name(), err)
				return err
			}
		}
	}
	return nil
}
