package game

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/younwookim/keeper/internal/application/scene"
)

// mockScene is a test double for Scene interface
type mockScene struct {
	calls         []string
	fixedCalled   int
	updateCalled  int
	drawCalled    int
	onEnterCalled int
	onExitCalled  int
	timeScale     float64
	nextScene     scene.Scene
	updateErr     error
}

func newMockScene() *mockScene {
	return &mockScene{timeScale: 1}
}

func (m *mockScene) BeginFrame() {
	m.calls = append(m.calls, "begin")
}

func (m *mockScene) FixedUpdate(dt float64) {
	m.fixedCalled++
	m.calls = append(m.calls, "fixed")
}

func (m *mockScene) Update(dt float64) (scene.Scene, error) {
	m.updateCalled++
	m.calls = append(m.calls, "update")
	return m.nextScene, m.updateErr
}

func (m *mockScene) Draw(screen *ebiten.Image) {
	m.drawCalled++
}

func (m *mockScene) TimeScale() float64 {
	return m.timeScale
}

func (m *mockScene) OnEnter() {
	m.onEnterCalled++
}

func (m *mockScene) OnExit() {
	m.onExitCalled++
}

func TestNew(t *testing.T) {
	mockInitial := newMockScene()
	g := New(mockInitial, 320, 240, 60)

	assert.NotNil(t, g)
	assert.Equal(t, 1, mockInitial.onEnterCalled, "OnEnter should be called on initial scene")
	assert.Equal(t, mockInitial, g.Current())
}

func TestGame_Update_PhaseOrder(t *testing.T) {
	mockInitial := newMockScene()
	g := New(mockInitial, 320, 240, 120)

	err := g.Update()
	assert.NoError(t, err)
	assert.Equal(t, []string{"begin", "fixed", "fixed", "update"}, mockInitial.calls,
		"input is sampled first, fixed steps run before the variable step")
}

func TestGame_Update_FixedStepCount(t *testing.T) {
	mockInitial := newMockScene()
	g := New(mockInitial, 320, 240, 64)
	g.SetDT(1.0 / 32)

	for i := 0; i < 32; i++ {
		assert.NoError(t, g.Update())
	}

	assert.Equal(t, 64, mockInitial.fixedCalled)
	assert.Equal(t, 32, mockInitial.updateCalled)
}

func TestGame_Update_FrozenTimeScale(t *testing.T) {
	mockInitial := newMockScene()
	mockInitial.timeScale = 0
	g := New(mockInitial, 320, 240, 60)

	for i := 0; i < 10; i++ {
		assert.NoError(t, g.Update())
	}

	assert.Zero(t, mockInitial.fixedCalled, "no fixed steps while time is stopped")
	assert.Equal(t, 10, mockInitial.updateCalled, "variable step still runs")
}

func TestGame_Draw_DelegatesToCurrentScene(t *testing.T) {
	mockInitial := newMockScene()
	g := New(mockInitial, 320, 240, 60)

	g.Draw(nil)

	assert.Equal(t, 1, mockInitial.drawCalled, "Draw should delegate to current scene")
}

func TestGame_Layout(t *testing.T) {
	mockInitial := newMockScene()
	g := New(mockInitial, 320, 240, 60)

	w, h := g.Layout(640, 480)
	assert.Equal(t, 320, w)
	assert.Equal(t, 240, h)
}

func TestGame_SceneTransition(t *testing.T) {
	scene1 := newMockScene()
	scene2 := newMockScene()

	// scene1 will transition to scene2 on first update
	scene1.nextScene = scene2

	g := New(scene1, 320, 240, 60)
	assert.Equal(t, 1, scene1.onEnterCalled, "Initial scene OnEnter called")

	// First update triggers transition
	err := g.Update()
	assert.NoError(t, err)

	assert.Equal(t, 1, scene1.updateCalled, "scene1 Update called")
	assert.Equal(t, 1, scene1.onExitCalled, "scene1 OnExit called on transition")
	assert.Equal(t, 1, scene2.onEnterCalled, "scene2 OnEnter called on transition")

	// Second update goes to scene2
	err = g.Update()
	assert.NoError(t, err)
	assert.Equal(t, 1, scene2.updateCalled, "scene2 Update called")
}

func TestGame_NoTransitionWhenNil(t *testing.T) {
	scene1 := newMockScene()

	g := New(scene1, 320, 240, 60)

	// Multiple updates, no transition
	for i := 0; i < 5; i++ {
		err := g.Update()
		assert.NoError(t, err)
	}

	assert.Equal(t, 5, scene1.updateCalled, "All updates go to scene1")
	assert.Equal(t, 0, scene1.onExitCalled, "No OnExit when no transition")
}

func TestGame_UpdateError(t *testing.T) {
	scene1 := newMockScene()
	scene1.updateErr = assert.AnError

	g := New(scene1, 320, 240, 60)

	err := g.Update()
	assert.Error(t, err, "Error should propagate from scene")
}
