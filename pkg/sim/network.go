package sim

import (
	"math/rand"

	"logical-clock/pkg/config"
)

// network — почтовые ящики процессов. Настоящей сети нет: доставка —
// это срез байтов в памяти. Seed фиксирует поведение сбоев,
// так что прогон воспроизводим.
type network struct {
	rng       *rand.Rand
	duplicate bool
	reorder   bool
	boxes     map[string][][]byte
}

func newNetwork(cfg config.NetworkConfig) *network {
	return &network{
		rng:       rand.New(rand.NewSource(cfg.Seed)),
		duplicate: cfg.Duplicate,
		reorder:   cfg.Reorder,
		boxes:     make(map[string][][]byte),
	}
}

// deliver кладёт payload в ящик получателя, при включённых сбоях
// иногда дублируя его и перемешивая весь ящик
func (n *network) deliver(to string, payload []byte) {
	box := append(n.boxes[to], payload)
	if n.duplicate && n.rng.Intn(2) == 0 {
		box = append(box, payload)
	}
	if n.reorder {
		n.rng.Shuffle(len(box), func(i, j int) {
			box[i], box[j] = box[j], box[i]
		})
	}
	n.boxes[to] = box
}

// drain забирает всё содержимое ящика
func (n *network) drain(name string) [][]byte {
	box := n.boxes[name]
	n.boxes[name] = nil
	return box
}
