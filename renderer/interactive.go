package renderer

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/Boothwhack/ray-tracing/scene"
	"github.com/Boothwhack/ray-tracing/types"
	"github.com/go-gl/gl/v2.1/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

const (
	// Coefficients for converting delta cursor movements to yaw/pitch camera angles.
	mouseSensitivityX = 0.005
	mouseSensitivityY = 0.005

	// Camera movement speed in world units per UI tick.
	cameraMoveSpeed = 0.05

	// How long the render loop naps when the camera has not changed.
	renderPollInterval = 10 * time.Millisecond
)

// An interactive opengl-based renderer. Rendering happens on a background
// goroutine whenever the camera changes; the UI thread only polls input and
// presents whatever the shared frame buffer currently holds, so early frames
// show up progressively while the pass is still running.
type interactiveRenderer struct {
	*FrameRenderer

	// opengl handles
	window *glfw.Window
	texFbo uint32

	// scratch copy of the frame buffer handed to the GL texture
	scratch []byte

	// state
	lastCursorPos types.Vec2
	mousePressed  bool

	// mutex guarding camera access between the UI and render loops
	sync.Mutex

	stop      chan struct{}
	renderErr chan error
}

// NewInteractive creates an interactive renderer presenting the scene in an
// opengl window. Render must be called from the main goroutine with the OS
// thread locked.
func NewInteractive(sc *scene.Scene, opts Options) (Renderer, error) {
	base, err := NewFrame(sc, opts)
	if err != nil {
		return nil, err
	}

	r := &interactiveRenderer{
		FrameRenderer: base,
		scratch:       make([]byte, base.buffer.Len()),
		stop:          make(chan struct{}),
		renderErr:     make(chan error, 1),
	}

	if err = r.initGL(opts); err != nil {
		r.Close()
		return nil, err
	}

	return r, nil
}

// Close shuts the window down and releases the glfw context. Must be called
// from the same OS thread that called Render.
func (r *interactiveRenderer) Close() {
	if r.window != nil {
		r.window.SetShouldClose(true)
	}
	glfw.Terminate()
}

func (r *interactiveRenderer) initGL(opts Options) error {
	var err error
	if err = glfw.Init(); err != nil {
		return fmt.Errorf("failed to initialize glfw: %s", err.Error())
	}

	glfw.WindowHint(glfw.Resizable, glfw.False)
	glfw.WindowHint(glfw.ContextVersionMajor, 2)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	r.window, err = glfw.CreateWindow(opts.FrameW, opts.FrameH, "ray-tracing", nil, nil)
	if err != nil {
		return fmt.Errorf("could not create opengl window: %s", err.Error())
	}
	r.window.MakeContextCurrent()

	if err = gl.Init(); err != nil {
		return fmt.Errorf("could not init opengl: %s", err.Error())
	}

	// Setup texture for image data
	var fbTexture uint32
	gl.GenTextures(1, &fbTexture)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, fbTexture)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(opts.FrameW), int32(opts.FrameH), 0, gl.RGBA, gl.UNSIGNED_BYTE, nil)

	// Attach texture to FBO
	gl.GenFramebuffers(1, &r.texFbo)
	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, r.texFbo)
	gl.FramebufferTexture2D(gl.READ_FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, fbTexture, 0)
	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, 0)

	// Bind event callbacks
	r.window.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
	r.window.SetKeyCallback(r.onKeyEvent)
	r.window.SetMouseButtonCallback(r.onMouseEvent)
	r.window.SetCursorPosCallback(r.onCursorPosEvent)

	return nil
}

func (r *interactiveRenderer) Render() error {
	go r.renderLoop()
	defer close(r.stop)

	for !r.window.ShouldClose() {
		select {
		case err := <-r.renderErr:
			return err
		default:
		}

		glfw.PollEvents()
		r.applyHeldKeys()
		r.present()
	}
	return nil
}

// renderLoop watches the camera and renders a fresh frame whenever it
// changes. The initial camera snapshot is poisoned with NaNs so the first
// comparison always fails and the first frame renders unconditionally.
func (r *interactiveRenderer) renderLoop() {
	nan := math.NaN()
	lastCamera := scene.Camera{Position: types.XYZ(nan, nan, nan)}

	for {
		select {
		case <-r.stop:
			return
		default:
		}

		camera := r.cameraSnapshot()
		if camera == lastCamera {
			time.Sleep(renderPollInterval)
			continue
		}

		if err := r.renderWith(camera); err != nil {
			r.renderErr <- err
			return
		}
		logger.Infof("rendered frame in %s", r.stats.RenderTime)
		lastCamera = camera
	}
}

func (r *interactiveRenderer) cameraSnapshot() scene.Camera {
	r.Lock()
	defer r.Unlock()
	return r.camera
}

// present copies the current frame buffer contents to the window. The copy
// may capture a frame mid-render; the render loop will finish filling it in
// on subsequent presents.
func (r *interactiveRenderer) present() {
	if err := r.buffer.Snapshot(r.scratch); err != nil {
		logger.Errorf("failed to snapshot frame buffer: %s", err.Error())
		return
	}

	frameW := int32(r.buffer.Width())
	frameH := int32(r.buffer.Height())

	// The buffer stores rows bottom-up, matching GL window coordinates, so
	// the blit is a straight copy.
	gl.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0, frameW, frameH, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(r.scratch))
	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, r.texFbo)
	gl.BlitFramebuffer(0, 0, frameW, frameH, 0, 0, frameW, frameH, gl.COLOR_BUFFER_BIT, gl.LINEAR)
	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, 0)

	r.window.SwapBuffers()
}

// applyHeldKeys translates the camera while a movement key is held down.
func (r *interactiveRenderer) applyHeldKeys() {
	var moves []scene.CameraDirection
	for key, dir := range map[glfw.Key]scene.CameraDirection{
		glfw.KeyW:     scene.Forward,
		glfw.KeyUp:    scene.Forward,
		glfw.KeyS:     scene.Backward,
		glfw.KeyDown:  scene.Backward,
		glfw.KeyA:     scene.Left,
		glfw.KeyLeft:  scene.Left,
		glfw.KeyD:     scene.Right,
		glfw.KeyRight: scene.Right,
		glfw.KeyE:     scene.Up,
		glfw.KeyQ:     scene.Down,
	} {
		if r.window.GetKey(key) == glfw.Press {
			moves = append(moves, dir)
		}
	}
	if len(moves) == 0 {
		return
	}

	// Double speed if shift is pressed
	speed := cameraMoveSpeed
	if r.window.GetKey(glfw.KeyLeftShift) == glfw.Press || r.window.GetKey(glfw.KeyRightShift) == glfw.Press {
		speed *= 2
	}

	r.Lock()
	defer r.Unlock()
	for _, dir := range moves {
		r.camera.Move(dir, speed)
	}
	r.camera.Refocus()
}

func (r *interactiveRenderer) onKeyEvent(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if key == glfw.KeyEscape && action == glfw.Press {
		r.window.SetShouldClose(true)
	}
}

func (r *interactiveRenderer) onMouseEvent(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mod glfw.ModifierKey) {
	if button != glfw.MouseButtonLeft {
		return
	}

	r.mousePressed = action == glfw.Press
	if r.mousePressed {
		xPos, yPos := w.GetCursorPos()
		r.lastCursorPos = types.XY(xPos, yPos)
	}
}

func (r *interactiveRenderer) onCursorPosEvent(w *glfw.Window, xPos, yPos float64) {
	if !r.mousePressed {
		return
	}

	newPos := types.XY(xPos, yPos)
	yaw := (r.lastCursorPos[0] - newPos[0]) * mouseSensitivityX
	pitch := (r.lastCursorPos[1] - newPos[1]) * mouseSensitivityY
	r.lastCursorPos = newPos

	r.Lock()
	defer r.Unlock()
	r.camera.Orbit(yaw, pitch)
	r.camera.Refocus()
}
