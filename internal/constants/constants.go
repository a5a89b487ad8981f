package constants

// AppName is the window title and the user agent client name.
const AppName = "PanelReel"

// ConfigDirName is the directory under $XDG_CONFIG_HOME.
const ConfigDirName = "panelreel"

// TPS is the frame rate the momentum physics is tuned for. Velocities are
// in pixels per frame.
const TPS = 60
