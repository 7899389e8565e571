package reveal

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestObserveIsOneShot(t *testing.T) {
	tr := NewTracker("machines", "about")

	require.False(t, tr.Observe("machines", false))
	require.Equal(t, Hidden, tr.State("machines"))

	require.True(t, tr.Observe("machines", true))
	require.Equal(t, Visible, tr.State("machines"))

	// leaving and re-entering the viewport changes nothing
	require.False(t, tr.Observe("machines", false))
	require.False(t, tr.Observe("machines", true))
	require.Equal(t, Visible, tr.State("machines"))
}

func TestSectionsAreIndependent(t *testing.T) {
	tr := NewTracker("machines", "about", "news")
	tr.Observe("about", true)

	require.Equal(t, map[string]State{
		"machines": Hidden,
		"about":    Visible,
		"news":     Hidden,
	}, tr.Snapshot())
}

func TestUnknownSectionsRegisterOnObservation(t *testing.T) {
	tr := NewTracker()
	require.Equal(t, Hidden, tr.State("late"))
	require.False(t, tr.Observe("late", false))
	require.Contains(t, tr.Snapshot(), "late")
	require.True(t, tr.Observe("late", true))
}

func TestConcurrentObserversRevealOnce(t *testing.T) {
	tr := NewTracker("news")
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		reveals int
	)
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if tr.Observe("news", true) {
				mu.Lock()
				reveals++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	require.Equal(t, 1, reveals)
}

func TestStateString(t *testing.T) {
	require.Equal(t, "hidden", Hidden.String())
	require.Equal(t, "visible", Visible.String())
}
